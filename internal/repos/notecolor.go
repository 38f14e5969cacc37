package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type NoteColorRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.NoteColor, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.NoteColor) ([]*types.NoteColor, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type noteColorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteColorRepo(db *gorm.DB, baseLog *logger.Logger) NoteColorRepo {
	return &noteColorRepo{db: db, log: baseLog.With("repo", "NoteColorRepo")}
}

func (nr *noteColorRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return nr.db
}

func (nr *noteColorRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.NoteColor, error) {
	var results []*types.NoteColor
	if err := nr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *noteColorRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.NoteColor) ([]*types.NoteColor, error) {
	if len(rows) == 0 {
		return []*types.NoteColor{}, nil
	}
	if err := nr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (nr *noteColorRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := nr.conn(tx).WithContext(ctx).
		Model(&types.NoteColor{}).
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

func (nr *noteColorRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := nr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.NoteColor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
