package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type SystemNoteRepo interface {
	// ListByUser returns notes pinned-first, then most-recent-created first.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SystemNote, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.SystemNote, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.SystemNote) ([]*types.SystemNote, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type systemNoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSystemNoteRepo(db *gorm.DB, baseLog *logger.Logger) SystemNoteRepo {
	return &systemNoteRepo{db: db, log: baseLog.With("repo", "SystemNoteRepo")}
}

func (sr *systemNoteRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return sr.db
}

func (sr *systemNoteRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SystemNote, error) {
	var results []*types.SystemNote
	if err := sr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pinned DESC, created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *systemNoteRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.SystemNote, error) {
	var results []*types.SystemNote
	if err := sr.conn(tx).WithContext(ctx).
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

func (sr *systemNoteRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SystemNote) ([]*types.SystemNote, error) {
	if len(rows) == 0 {
		return []*types.SystemNote{}, nil
	}
	if err := sr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (sr *systemNoteRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := sr.conn(tx).WithContext(ctx).
		Model(&types.SystemNote{}).
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

func (sr *systemNoteRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := sr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.SystemNote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
