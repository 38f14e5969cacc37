package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type QuickLinkService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.QuickLink, error)
	Create(ctx context.Context, userID uuid.UUID, link *types.QuickLink) (*types.QuickLink, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.QuickLink, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type quickLinkService struct {
	db            *gorm.DB
	log           *logger.Logger
	quickLinkRepo repos.QuickLinkRepo
}

func NewQuickLinkService(db *gorm.DB, log *logger.Logger, quickLinkRepo repos.QuickLinkRepo) QuickLinkService {
	return &quickLinkService{
		db:            db,
		log:           log.With("service", "QuickLinkService"),
		quickLinkRepo: quickLinkRepo,
	}
}

func validateLinkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("url must include a host")
	}
	return nil
}

func (qs *quickLinkService) List(ctx context.Context, userID uuid.UUID) ([]*types.QuickLink, error) {
	return qs.quickLinkRepo.ListByUser(ctx, nil, userID)
}

func (qs *quickLinkService) Create(ctx context.Context, userID uuid.UUID, link *types.QuickLink) (*types.QuickLink, error) {
	link.UserID = userID
	link.Name = normalization.TrimInput(link.Name)
	if link.Name == "" {
		return nil, fmt.Errorf("quicklink name is required")
	}
	link.URL = normalization.TrimInput(link.URL)
	if err := validateLinkURL(link.URL); err != nil {
		return nil, err
	}
	// link_type is either one of the fixed vocabulary or a free-form custom
	// string; custom values are stored exactly as given.
	link.LinkType = normalization.TrimInput(link.LinkType)
	rows, err := qs.quickLinkRepo.Create(ctx, nil, []*types.QuickLink{link})
	if err != nil {
		return nil, err
	}
	return qs.quickLinkRepo.GetByID(ctx, nil, rows[0].ID, userID)
}

func (qs *quickLinkService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.QuickLink, error) {
	if v, ok := fields["name"]; ok {
		name, _ := v.(string)
		name = normalization.TrimInput(name)
		if name == "" {
			return nil, fmt.Errorf("quicklink name is required")
		}
		fields["name"] = name
	}
	if v, ok := fields["url"]; ok {
		raw, _ := v.(string)
		raw = normalization.TrimInput(raw)
		if err := validateLinkURL(raw); err != nil {
			return nil, err
		}
		fields["url"] = raw
	}
	if err := qs.quickLinkRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	return qs.quickLinkRepo.GetByID(ctx, nil, id, userID)
}

func (qs *quickLinkService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return qs.quickLinkRepo.Delete(ctx, nil, id, userID)
}
