package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

// MaxFileSizeBytes caps idea attachments at 1 MiB.
const MaxFileSizeBytes = 1 << 20

var ErrFileTooLarge = errors.New("file exceeds the 1 MiB attachment limit")

type FileService interface {
	ListByIdea(ctx context.Context, userID, ideaID uuid.UUID) ([]*types.IdeaFile, error)
	Upload(ctx context.Context, userID, ideaID uuid.UUID, filename, mimeType string, size int64, file io.Reader) (*types.IdeaFile, error)
	Delete(ctx context.Context, userID, fileID uuid.UUID) error
}

type fileService struct {
	db            *gorm.DB
	log           *logger.Logger
	ideaRepo      repos.IdeaRepo
	fileRepo      repos.IdeaFileRepo
	bucketService BucketService
}

func NewFileService(db *gorm.DB, log *logger.Logger, ideaRepo repos.IdeaRepo, fileRepo repos.IdeaFileRepo, bucketService BucketService) FileService {
	return &fileService{
		db:            db,
		log:           log.With("service", "FileService"),
		ideaRepo:      ideaRepo,
		fileRepo:      fileRepo,
		bucketService: bucketService,
	}
}

// buildStorageKey lays objects out as {userId}/{ideaId}/{timestamp}_{filename}.
func buildStorageKey(userID, ideaID uuid.UUID, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d_%s", userID.String(), ideaID.String(), now.UnixMilli(), filename)
}

func (fs *fileService) ListByIdea(ctx context.Context, userID, ideaID uuid.UUID) ([]*types.IdeaFile, error) {
	return fs.fileRepo.ListByIdea(ctx, nil, ideaID, userID)
}

func (fs *fileService) Upload(ctx context.Context, userID, ideaID uuid.UUID, filename, mimeType string, size int64, file io.Reader) (*types.IdeaFile, error) {
	if size > MaxFileSizeBytes {
		return nil, ErrFileTooLarge
	}
	if _, err := fs.ideaRepo.GetByID(ctx, nil, ideaID, userID); err != nil {
		return nil, err
	}

	// Buffer with a hard byte limit; the declared size is not trusted.
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(file, MaxFileSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if n > MaxFileSizeBytes {
		return nil, ErrFileTooLarge
	}

	key := buildStorageKey(userID, ideaID, filename, time.Now().UTC())
	if err := fs.bucketService.UploadFile(ctx, key, &buf); err != nil {
		return nil, err
	}

	row := &types.IdeaFile{
		UserID:       userID,
		IdeaID:       ideaID,
		OriginalName: filename,
		MimeType:     mimeType,
		SizeBytes:    n,
		StorageKey:   key,
		FileURL:      fs.bucketService.GetPublicURL(key),
	}
	created, err := fs.fileRepo.Create(ctx, nil, []*types.IdeaFile{row})
	if err != nil {
		// Best-effort cleanup of the orphaned object.
		if delErr := fs.bucketService.DeleteFile(ctx, key); delErr != nil {
			fs.log.Warn("failed to clean up orphaned upload", "key", key, "error", delErr)
		}
		return nil, err
	}
	return created[0], nil
}

func (fs *fileService) Delete(ctx context.Context, userID, fileID uuid.UUID) error {
	row, err := fs.fileRepo.GetByID(ctx, nil, fileID, userID)
	if err != nil {
		return err
	}
	if err := fs.fileRepo.Delete(ctx, nil, fileID, userID); err != nil {
		return err
	}
	// Row is gone; a failed object delete only leaks storage.
	if err := fs.bucketService.DeleteFile(ctx, row.StorageKey); err != nil {
		fs.log.Warn("failed to delete stored object", "key", row.StorageKey, "error", err)
	}
	return nil
}
