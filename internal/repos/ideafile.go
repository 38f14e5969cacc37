package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type IdeaFileRepo interface {
	ListByIdea(ctx context.Context, tx *gorm.DB, ideaID, userID uuid.UUID) ([]*types.IdeaFile, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.IdeaFile, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.IdeaFile) ([]*types.IdeaFile, error)
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type ideaFileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaFileRepo(db *gorm.DB, baseLog *logger.Logger) IdeaFileRepo {
	return &ideaFileRepo{db: db, log: baseLog.With("repo", "IdeaFileRepo")}
}

func (fr *ideaFileRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fr.db
}

func (fr *ideaFileRepo) ListByIdea(ctx context.Context, tx *gorm.DB, ideaID, userID uuid.UUID) ([]*types.IdeaFile, error) {
	var results []*types.IdeaFile
	if err := fr.conn(tx).WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *ideaFileRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.IdeaFile, error) {
	var results []*types.IdeaFile
	if err := fr.conn(tx).WithContext(ctx).
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

func (fr *ideaFileRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.IdeaFile) ([]*types.IdeaFile, error) {
	if len(rows) == 0 {
		return []*types.IdeaFile{}, nil
	}
	if err := fr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (fr *ideaFileRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	res := fr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.IdeaFile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
