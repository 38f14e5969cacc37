package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type IdeaRepo interface {
	// ListByUser returns every idea owned by the user, most-recent-created
	// first, with content type and platform joins loaded.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Idea, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Idea, error)
	Create(ctx context.Context, tx *gorm.DB, ideas []*types.Idea) ([]*types.Idea, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type ideaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	return &ideaRepo{db: db, log: baseLog.With("repo", "IdeaRepo")}
}

func (ir *ideaRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ir.db
}

func (ir *ideaRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Idea, error) {
	var results []*types.Idea
	if err := ir.conn(tx).WithContext(ctx).
		Preload("ContentType").
		Preload("Platform").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *ideaRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Idea, error) {
	var results []*types.Idea
	if err := ir.conn(tx).WithContext(ctx).
		Preload("ContentType").
		Preload("Platform").
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

func (ir *ideaRepo) Create(ctx context.Context, tx *gorm.DB, ideas []*types.Idea) ([]*types.Idea, error) {
	if len(ideas) == 0 {
		return []*types.Idea{}, nil
	}
	if err := ir.conn(tx).WithContext(ctx).Create(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (ir *ideaRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := ir.conn(tx).WithContext(ctx).
		Model(&types.Idea{}).
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

func (ir *ideaRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := ir.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Idea{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
