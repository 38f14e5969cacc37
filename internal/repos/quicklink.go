package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type QuickLinkRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.QuickLink, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.QuickLink, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.QuickLink) ([]*types.QuickLink, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type quickLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuickLinkRepo(db *gorm.DB, baseLog *logger.Logger) QuickLinkRepo {
	return &quickLinkRepo{db: db, log: baseLog.With("repo", "QuickLinkRepo")}
}

func (qr *quickLinkRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return qr.db
}

func (qr *quickLinkRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.QuickLink, error) {
	var results []*types.QuickLink
	if err := qr.conn(tx).WithContext(ctx).
		Preload("ContentType").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quickLinkRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.QuickLink, error) {
	var results []*types.QuickLink
	if err := qr.conn(tx).WithContext(ctx).
		Preload("ContentType").
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

func (qr *quickLinkRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.QuickLink) ([]*types.QuickLink, error) {
	if len(rows) == 0 {
		return []*types.QuickLink{}, nil
	}
	if err := qr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (qr *quickLinkRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := qr.conn(tx).WithContext(ctx).
		Model(&types.QuickLink{}).
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

func (qr *quickLinkRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := qr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.QuickLink{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
