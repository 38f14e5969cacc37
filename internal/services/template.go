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

type TemplateService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.ContentTemplate, error)
	Create(ctx context.Context, userID uuid.UUID, tpl *types.ContentTemplate) (*types.ContentTemplate, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.ContentTemplate, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type templateService struct {
	db           *gorm.DB
	log          *logger.Logger
	templateRepo repos.ContentTemplateRepo
}

func NewTemplateService(db *gorm.DB, log *logger.Logger, templateRepo repos.ContentTemplateRepo) TemplateService {
	return &templateService{
		db:           db,
		log:          log.With("service", "TemplateService"),
		templateRepo: templateRepo,
	}
}

func (ts *templateService) List(ctx context.Context, userID uuid.UUID) ([]*types.ContentTemplate, error) {
	return ts.templateRepo.ListByUser(ctx, nil, userID)
}

func (ts *templateService) Create(ctx context.Context, userID uuid.UUID, tpl *types.ContentTemplate) (*types.ContentTemplate, error) {
	tpl.UserID = userID
	tpl.Name = normalization.TrimInput(tpl.Name)
	if tpl.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	rows, err := ts.templateRepo.Create(ctx, nil, []*types.ContentTemplate{tpl})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (ts *templateService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.ContentTemplate, error) {
	if v, ok := fields["name"]; ok {
		name, _ := v.(string)
		name = normalization.TrimInput(name)
		if name == "" {
			return nil, fmt.Errorf("template name is required")
		}
		fields["name"] = name
	}
	if err := ts.templateRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	return ts.templateRepo.GetByID(ctx, nil, id, userID)
}

func (ts *templateService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ts.templateRepo.Delete(ctx, nil, id, userID)
}
