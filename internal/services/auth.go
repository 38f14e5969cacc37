package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/requestdata"
	"github.com/calebwray/ideawell-backend/internal/types"
	"github.com/calebwray/ideawell-backend/internal/utils"
)

type JWTClaims struct {
	// Recovery sessions come from a redeemed password-reset link and may only
	// call the update-password operation.
	Recovery bool `json:"recovery,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	RequestPasswordReset(ctx context.Context, email string) error
	RedeemPasswordReset(ctx context.Context, resetToken string) (string, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	userTokenRepo   repos.UserTokenRepo
	resetTokenRepo  repos.PasswordResetTokenRepo
	avatarService   AvatarService
	taxonomyService TaxonomyService
	jwtSecretKey    string
	accessTTL       time.Duration
	refreshTTL      time.Duration
	resetTTL        time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	resetTokenRepo repos.PasswordResetTokenRepo,
	avatarService AvatarService,
	taxonomyService TaxonomyService,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:              db,
		log:             log.With("service", "AuthService"),
		userRepo:        userRepo,
		userTokenRepo:   userTokenRepo,
		resetTokenRepo:  resetTokenRepo,
		avatarService:   avatarService,
		taxonomyService: taxonomyService,
		jwtSecretKey:    jwtSecretKey,
		accessTTL:       accessTTL,
		refreshTTL:      refreshTTL,
		resetTTL:        30 * time.Minute,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	utils.NormalizeUserFields(user)
	if vErr := utils.ValidateRegistration(ctx, as.userRepo, as.log, user); vErr != nil {
		return vErr
	}
	if hErr := utils.HashPassword(user); hErr != nil {
		return hErr
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if err := as.avatarService.CreateAndUploadUserAvatar(ctx, tx, user); err != nil {
			return fmt.Errorf("Failed to create and upload user avatar: %w", err)
		}
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("Failed to create user: %w", err)
		}
		// New accounts start with the built-in content types and platforms.
		if err := as.taxonomyService.SeedDefaults(ctx, tx, user.ID); err != nil {
			return fmt.Errorf("Failed to seed default taxonomy: %w", err)
		}
		return nil
	})
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = normalization.ParseEmail(email)
	if vErr := utils.ValidateLogin(email, password); vErr != nil {
		return "", "", vErr
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("Error retrieving user by email: %w", err)
	}
	if len(users) == 0 {
		return "", "", fmt.Errorf("Invalid email or password")
	}
	user := users[0]
	if cErr := utils.CheckPassword(user.Password, password); cErr != nil {
		return "", "", fmt.Errorf("Invalid email or password")
	}

	var accessToken string
	var refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
		if ftErr != nil {
			return fmt.Errorf("Failed to check user tokens: %w", ftErr)
		}
		expired := make([]uuid.UUID, 0, len(foundTokens))
		for _, t := range foundTokens {
			if t.ExpiresAt.Before(time.Now()) {
				expired = append(expired, t.ID)
			}
		}
		if len(expired) > 0 {
			if dtErr := as.userTokenRepo.DeleteByIDs(ctx, tx, expired); dtErr != nil {
				return fmt.Errorf("Failed to delete expired user tokens: %w", dtErr)
			}
		}
		tok, genErr := as.generateAccessToken(user.ID, false)
		if genErr != nil {
			return fmt.Errorf("Generate access token error: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
			return fmt.Errorf("Create user token error: %w", ctErr)
		}
		return nil
	}); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return "", "", fmt.Errorf("No request data found in context")
	}
	if rd.RefreshToken == "" {
		return "", "", fmt.Errorf("Refresh token not found in request data")
	}

	var accessToken string
	var newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
		if ftErr != nil {
			return fmt.Errorf("Error fetching refresh token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return fmt.Errorf("Unknown refresh token")
		}
		existingToken := foundTokens[0]
		if existingToken.ExpiresAt.Before(time.Now()) {
			if dtErr := as.userTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dtErr != nil {
				return fmt.Errorf("Refresh token expired, error deleting: %w", dtErr)
			}
			return fmt.Errorf("Refresh token expired")
		}
		tok, genErr := as.generateAccessToken(existingToken.UserID, false)
		if genErr != nil {
			return fmt.Errorf("Failed to generate new access token: %w", genErr)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()
		newUserToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       existingToken.UserID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&newUserToken}); cErr != nil {
			return fmt.Errorf("Failed to create new user token: %w", cErr)
		}
		if dErr := as.userTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dErr != nil {
			return fmt.Errorf("Failed to remove old refresh token: %w", dErr)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("No request data found in context")
	}
	if rd.TokenString == "" {
		return fmt.Errorf("Token string in request data empty")
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
		if ftErr != nil {
			return fmt.Errorf("Error finding user token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return nil
		}
		if tdErr := as.userTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{foundTokens[0].ID}); tdErr != nil {
			return fmt.Errorf("Error deleting user token: %w", tdErr)
		}
		return nil
	})
}

// RequestPasswordReset creates a one-time reset token for the account. The
// response is identical whether or not the email exists so the endpoint does
// not leak which addresses have accounts.
func (as *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalization.ParseEmail(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return fmt.Errorf("Error retrieving user by email: %w", err)
	}
	if len(users) == 0 {
		as.log.Info("Password reset requested for unknown email")
		return nil
	}
	user := users[0]
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := as.resetTokenRepo.DeleteByUserID(ctx, tx, user.ID); dErr != nil {
			return fmt.Errorf("Failed to clear previous reset tokens: %w", dErr)
		}
		row := &types.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     uuid.New().String(),
			ExpiresAt: time.Now().Add(as.resetTTL),
		}
		if cErr := as.resetTokenRepo.Create(ctx, tx, row); cErr != nil {
			return fmt.Errorf("Failed to create reset token: %w", cErr)
		}
		// Mail delivery is out of process; the link lands in the operator's
		// mail pipeline via this log stream.
		as.log.Info("Password reset token issued", "user_id", user.ID, "token", row.Token)
		return nil
	})
}

// RedeemPasswordReset trades a valid reset token for a temporary recovery
// access token. The reset token is consumed either way.
func (as *authService) RedeemPasswordReset(ctx context.Context, resetToken string) (string, error) {
	if resetToken == "" {
		return "", fmt.Errorf("reset token is required")
	}
	var accessToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, gErr := as.resetTokenRepo.GetByToken(ctx, tx, resetToken)
		if gErr != nil {
			return fmt.Errorf("Error fetching reset token: %w", gErr)
		}
		if row == nil {
			return fmt.Errorf("Invalid reset token")
		}
		if dErr := as.resetTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{row.ID}); dErr != nil {
			return fmt.Errorf("Failed to consume reset token: %w", dErr)
		}
		if row.ExpiresAt.Before(time.Now()) {
			return fmt.Errorf("Reset token expired")
		}
		tok, genErr := as.generateAccessToken(row.UserID, true)
		if genErr != nil {
			return fmt.Errorf("Failed to generate recovery token: %w", genErr)
		}
		accessToken = tok
		return nil
	})
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

func (as *authService) generateAccessToken(userID uuid.UUID, recovery bool) (string, error) {
	ttl := as.accessTTL
	if recovery {
		ttl = 15 * time.Minute
	}
	claims := JWTClaims{
		Recovery: recovery,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("Failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("Invalid or expired JWT token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("Invalid user id in token: %w", err)
	}

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Recovery:    claims.Recovery,
	}
	// Recovery sessions are stateless; only regular sessions carry a
	// refresh token row.
	if !claims.Recovery {
		foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
		if ftErr != nil {
			return ctx, fmt.Errorf("Failed to fetch user token by access token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return ctx, fmt.Errorf("Session has been revoked")
		}
		rd.RefreshToken = foundTokens[0].RefreshToken
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
