package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type PlatformRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Platform, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Platform, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Platform) ([]*types.Platform, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type platformRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlatformRepo(db *gorm.DB, baseLog *logger.Logger) PlatformRepo {
	return &platformRepo{db: db, log: baseLog.With("repo", "PlatformRepo")}
}

func (pr *platformRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *platformRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Platform, error) {
	var results []*types.Platform
	if err := pr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *platformRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Platform, error) {
	var results []*types.Platform
	if err := pr.conn(tx).WithContext(ctx).
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

func (pr *platformRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Platform) ([]*types.Platform, error) {
	if len(rows) == 0 {
		return []*types.Platform{}, nil
	}
	if err := pr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (pr *platformRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := pr.conn(tx).WithContext(ctx).
		Model(&types.Platform{}).
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

func (pr *platformRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := pr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Platform{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
