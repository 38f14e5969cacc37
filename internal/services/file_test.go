package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildStorageKey(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	ideaID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	key := buildStorageKey(userID, ideaID, "pitch.pdf", now)

	want := "11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222/1746100800000_pitch.pdf"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}

func TestUploadRejectsOversizedDeclaredSize(t *testing.T) {
	fs := &fileService{}
	_, err := fs.Upload(context.Background(), uuid.New(), uuid.New(), "big.bin", "application/octet-stream", MaxFileSizeBytes+1, strings.NewReader(""))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestMaxFileSizeIsOneMiB(t *testing.T) {
	if MaxFileSizeBytes != 1048576 {
		t.Fatalf("cap = %d, want 1 MiB", MaxFileSizeBytes)
	}
}
