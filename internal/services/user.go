package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
	"github.com/calebwray/ideawell-backend/internal/utils"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error)
	// UpdatePassword serves both normal sessions and temporary recovery
	// sessions; it is the second half of the password-reset flow.
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type userService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	resetTokenRepo repos.PasswordResetTokenRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, resetTokenRepo repos.PasswordResetTokenRepo) UserService {
	return &userService{
		db:             db,
		log:            log.With("service", "UserService"),
		userRepo:       userRepo,
		resetTokenRepo: resetTokenRepo,
	}
}

func (us *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return users[0], nil
}

func (us *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	scratch := &types.User{Password: newPassword}
	if err := utils.HashPassword(scratch); err != nil {
		return err
	}
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := us.userRepo.UpdatePassword(ctx, tx, userID, scratch.Password); err != nil {
			return fmt.Errorf("Failed to update password: %w", err)
		}
		// A successful change invalidates any outstanding reset links.
		if err := us.resetTokenRepo.DeleteByUserID(ctx, tx, userID); err != nil {
			return fmt.Errorf("Failed to clear reset tokens: %w", err)
		}
		return nil
	})
}
