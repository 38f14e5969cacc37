package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type PasswordResetTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *types.PasswordResetToken) error
	GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.PasswordResetToken, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type passwordResetTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPasswordResetTokenRepo(db *gorm.DB, baseLog *logger.Logger) PasswordResetTokenRepo {
	return &passwordResetTokenRepo{db: db, log: baseLog.With("repo", "PasswordResetTokenRepo")}
}

func (pr *passwordResetTokenRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *passwordResetTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *types.PasswordResetToken) error {
	return pr.conn(tx).WithContext(ctx).Create(token).Error
}

func (pr *passwordResetTokenRepo) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.PasswordResetToken, error) {
	var results []*types.PasswordResetToken
	if err := pr.conn(tx).WithContext(ctx).
		Where("token = ?", token).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *passwordResetTokenRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return pr.conn(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.PasswordResetToken{}).Error
}

func (pr *passwordResetTokenRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return pr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.PasswordResetToken{}).Error
}
