package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type ContentTemplateRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ContentTemplate, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.ContentTemplate, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ContentTemplate) ([]*types.ContentTemplate, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type contentTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentTemplateRepo(db *gorm.DB, baseLog *logger.Logger) ContentTemplateRepo {
	return &contentTemplateRepo{db: db, log: baseLog.With("repo", "ContentTemplateRepo")}
}

func (tr *contentTemplateRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return tr.db
}

func (tr *contentTemplateRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ContentTemplate, error) {
	var results []*types.ContentTemplate
	if err := tr.conn(tx).WithContext(ctx).
		Preload("ContentType").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *contentTemplateRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.ContentTemplate, error) {
	var results []*types.ContentTemplate
	if err := tr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return results[0], nil
}

func (tr *contentTemplateRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ContentTemplate) ([]*types.ContentTemplate, error) {
	if len(rows) == 0 {
		return []*types.ContentTemplate{}, nil
	}
	if err := tr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (tr *contentTemplateRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := tr.conn(tx).WithContext(ctx).
		Model(&types.ContentTemplate{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (tr *contentTemplateRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := tr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.ContentTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
