package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

const defaultTagColor = "#808080"

type TagService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (*types.Tag, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.Tag, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type tagService struct {
	db      *gorm.DB
	log     *logger.Logger
	tagRepo repos.TagRepo
}

func NewTagService(db *gorm.DB, log *logger.Logger, tagRepo repos.TagRepo) TagService {
	return &tagService{
		db:      db,
		log:     log.With("service", "TagService"),
		tagRepo: tagRepo,
	}
}

func (ts *tagService) List(ctx context.Context, userID uuid.UUID) ([]*types.Tag, error) {
	return ts.tagRepo.ListByUser(ctx, nil, userID)
}

func (ts *tagService) Create(ctx context.Context, userID uuid.UUID, name, color string) (*types.Tag, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if color == "" {
		color = defaultTagColor
	}
	parsed, err := normalization.ParseHexColor(color)
	if err != nil {
		return nil, err
	}
	rows, err := ts.tagRepo.Create(ctx, nil, []*types.Tag{{UserID: userID, Name: name, Color: parsed}})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (ts *tagService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.Tag, error) {
	if v, ok := fields["name"]; ok {
		name, _ := v.(string)
		name = normalization.TrimInput(name)
		if name == "" {
			return nil, fmt.Errorf("tag name is required")
		}
		fields["name"] = name
	}
	if v, ok := fields["color"]; ok {
		color, _ := v.(string)
		parsed, err := normalization.ParseHexColor(color)
		if err != nil {
			return nil, err
		}
		fields["color"] = parsed
	}
	if err := ts.tagRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	rows, err := ts.tagRepo.GetByIDs(ctx, nil, []uuid.UUID{id}, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (ts *tagService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ts.tagRepo.Delete(ctx, nil, id, userID)
}
