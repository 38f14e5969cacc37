package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type IdeaTagRepo interface {
	ListTagIDsByIdea(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) ([]uuid.UUID, error)
	ListByIdeaIDs(ctx context.Context, tx *gorm.DB, ideaIDs []uuid.UUID) ([]*types.IdeaTag, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.IdeaTag) ([]*types.IdeaTag, error)
	DeleteByIdea(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) error
}

type ideaTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaTagRepo(db *gorm.DB, baseLog *logger.Logger) IdeaTagRepo {
	return &ideaTagRepo{db: db, log: baseLog.With("repo", "IdeaTagRepo")}
}

func (itr *ideaTagRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return itr.db
}

func (itr *ideaTagRepo) ListTagIDsByIdea(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) ([]uuid.UUID, error) {
	var rows []*types.IdeaTag
	if err := itr.conn(tx).WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TagID)
	}
	return ids, nil
}

func (itr *ideaTagRepo) ListByIdeaIDs(ctx context.Context, tx *gorm.DB, ideaIDs []uuid.UUID) ([]*types.IdeaTag, error) {
	var rows []*types.IdeaTag
	if len(ideaIDs) == 0 {
		return rows, nil
	}
	if err := itr.conn(tx).WithContext(ctx).
		Where("idea_id IN ?", ideaIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (itr *ideaTagRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.IdeaTag) ([]*types.IdeaTag, error) {
	if len(rows) == 0 {
		return []*types.IdeaTag{}, nil
	}
	if err := itr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (itr *ideaTagRepo) DeleteByIdea(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) error {
	return itr.conn(tx).WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Delete(&types.IdeaTag{}).Error
}
