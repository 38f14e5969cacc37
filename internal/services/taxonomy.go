package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

var ErrSystemRowImmutable = errors.New("built-in entries cannot be deleted")

// Defaults seeded for every new account.
var (
	defaultContentTypes = []string{"Video", "Short", "Blog Post", "Podcast", "Newsletter"}
	defaultPlatforms    = []string{"YouTube", "Instagram", "TikTok", "X", "LinkedIn"}
)

// TaxonomyService manages the two idea classification axes, content types and
// platforms. Deleting a row nulls referencing ideas via the schema's
// ON DELETE SET NULL, it never deletes ideas.
type TaxonomyService interface {
	SeedDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error

	ListContentTypes(ctx context.Context, userID uuid.UUID) ([]*types.ContentType, error)
	CreateContentType(ctx context.Context, userID uuid.UUID, name string) (*types.ContentType, error)
	UpdateContentType(ctx context.Context, userID, id uuid.UUID, name string) (*types.ContentType, error)
	DeleteContentType(ctx context.Context, userID, id uuid.UUID) error

	ListPlatforms(ctx context.Context, userID uuid.UUID) ([]*types.Platform, error)
	CreatePlatform(ctx context.Context, userID uuid.UUID, name string) (*types.Platform, error)
	UpdatePlatform(ctx context.Context, userID, id uuid.UUID, name string) (*types.Platform, error)
	DeletePlatform(ctx context.Context, userID, id uuid.UUID) error
}

type taxonomyService struct {
	db              *gorm.DB
	log             *logger.Logger
	contentTypeRepo repos.ContentTypeRepo
	platformRepo    repos.PlatformRepo
}

func NewTaxonomyService(db *gorm.DB, log *logger.Logger, contentTypeRepo repos.ContentTypeRepo, platformRepo repos.PlatformRepo) TaxonomyService {
	return &taxonomyService{
		db:              db,
		log:             log.With("service", "TaxonomyService"),
		contentTypeRepo: contentTypeRepo,
		platformRepo:    platformRepo,
	}
}

func (ts *taxonomyService) SeedDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	cts := make([]*types.ContentType, 0, len(defaultContentTypes))
	for _, name := range defaultContentTypes {
		cts = append(cts, &types.ContentType{ID: uuid.New(), UserID: userID, Name: name, IsSystem: true})
	}
	if _, err := ts.contentTypeRepo.Create(ctx, tx, cts); err != nil {
		return fmt.Errorf("seed content types: %w", err)
	}
	pfs := make([]*types.Platform, 0, len(defaultPlatforms))
	for _, name := range defaultPlatforms {
		pfs = append(pfs, &types.Platform{ID: uuid.New(), UserID: userID, Name: name, IsSystem: true})
	}
	if _, err := ts.platformRepo.Create(ctx, tx, pfs); err != nil {
		return fmt.Errorf("seed platforms: %w", err)
	}
	return nil
}

func (ts *taxonomyService) ListContentTypes(ctx context.Context, userID uuid.UUID) ([]*types.ContentType, error) {
	return ts.contentTypeRepo.ListByUser(ctx, nil, userID)
}

func (ts *taxonomyService) CreateContentType(ctx context.Context, userID uuid.UUID, name string) (*types.ContentType, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("content type name is required")
	}
	rows, err := ts.contentTypeRepo.Create(ctx, nil, []*types.ContentType{{UserID: userID, Name: name}})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (ts *taxonomyService) UpdateContentType(ctx context.Context, userID, id uuid.UUID, name string) (*types.ContentType, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("content type name is required")
	}
	if err := ts.contentTypeRepo.UpdateFields(ctx, nil, id, userID, map[string]interface{}{"name": name}); err != nil {
		return nil, err
	}
	return ts.contentTypeRepo.GetByID(ctx, nil, id, userID)
}

func (ts *taxonomyService) DeleteContentType(ctx context.Context, userID, id uuid.UUID) error {
	row, err := ts.contentTypeRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return err
	}
	if row.IsSystem {
		return ErrSystemRowImmutable
	}
	return ts.contentTypeRepo.Delete(ctx, nil, id, userID)
}

func (ts *taxonomyService) ListPlatforms(ctx context.Context, userID uuid.UUID) ([]*types.Platform, error) {
	return ts.platformRepo.ListByUser(ctx, nil, userID)
}

func (ts *taxonomyService) CreatePlatform(ctx context.Context, userID uuid.UUID, name string) (*types.Platform, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("platform name is required")
	}
	rows, err := ts.platformRepo.Create(ctx, nil, []*types.Platform{{UserID: userID, Name: name}})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (ts *taxonomyService) UpdatePlatform(ctx context.Context, userID, id uuid.UUID, name string) (*types.Platform, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("platform name is required")
	}
	if err := ts.platformRepo.UpdateFields(ctx, nil, id, userID, map[string]interface{}{"name": name}); err != nil {
		return nil, err
	}
	return ts.platformRepo.GetByID(ctx, nil, id, userID)
}

func (ts *taxonomyService) DeletePlatform(ctx context.Context, userID, id uuid.UUID) error {
	row, err := ts.platformRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return err
	}
	if row.IsSystem {
		return ErrSystemRowImmutable
	}
	return ts.platformRepo.Delete(ctx, nil, id, userID)
}
