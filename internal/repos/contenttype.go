package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type ContentTypeRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ContentType, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.ContentType, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ContentType) ([]*types.ContentType, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type contentTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentTypeRepo(db *gorm.DB, baseLog *logger.Logger) ContentTypeRepo {
	return &contentTypeRepo{db: db, log: baseLog.With("repo", "ContentTypeRepo")}
}

func (cr *contentTypeRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *contentTypeRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ContentType, error) {
	var results []*types.ContentType
	if err := cr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contentTypeRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.ContentType, error) {
	var results []*types.ContentType
	if err := cr.conn(tx).WithContext(ctx).
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

func (cr *contentTypeRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ContentType) ([]*types.ContentType, error) {
	if len(rows) == 0 {
		return []*types.ContentType{}, nil
	}
	if err := cr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (cr *contentTypeRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := cr.conn(tx).WithContext(ctx).
		Model(&types.ContentType{}).
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

func (cr *contentTypeRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := cr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.ContentType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
