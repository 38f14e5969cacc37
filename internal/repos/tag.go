package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type TagRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Tag, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, userID uuid.UUID) ([]*types.Tag, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Tag) ([]*types.Tag, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (tr *tagRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return tr.db
}

func (tr *tagRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Tag, error) {
	var results []*types.Tag
	if err := tr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tagRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, userID uuid.UUID) ([]*types.Tag, error) {
	var results []*types.Tag
	if len(ids) == 0 {
		return results, nil
	}
	if err := tr.conn(tx).WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tagRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Tag) ([]*types.Tag, error) {
	if len(rows) == 0 {
		return []*types.Tag{}, nil
	}
	if err := tr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (tr *tagRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := tr.conn(tx).WithContext(ctx).
		Model(&types.Tag{}).
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

func (tr *tagRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := tr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Tag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
