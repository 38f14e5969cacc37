package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/config"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

// recordingNoteRepo keeps a single note in memory and records every write
// that reaches it.
type recordingNoteRepo struct {
	note    *types.SystemNote
	updates []map[string]interface{}
}

func (r *recordingNoteRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SystemNote, error) {
	return []*types.SystemNote{r.note}, nil
}

func (r *recordingNoteRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.SystemNote, error) {
	copied := *r.note
	return &copied, nil
}

func (r *recordingNoteRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SystemNote) ([]*types.SystemNote, error) {
	return rows, nil
}

func (r *recordingNoteRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]interface{}) error {
	r.updates = append(r.updates, fields)
	if v, ok := fields["mood"]; ok {
		r.note.Mood, _ = v.(string)
	}
	if v, ok := fields["color"]; ok {
		r.note.Color, _ = v.(string)
	}
	if v, ok := fields["title"]; ok {
		r.note.Title, _ = v.(string)
	}
	return nil
}

func (r *recordingNoteRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	return nil
}

func newNoteServiceWithRepo(t *testing.T, repo *recordingNoteRepo) NoteService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewNoteService(nil, log, repo, NewWebhookSink(config.WebhookConfig{}, log, nil))
}

func TestUpdateRejectsInvalidPatchBeforeWrite(t *testing.T) {
	userID := uuid.New()
	repo := &recordingNoteRepo{note: &types.SystemNote{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "remember",
		NoteType: types.NoteTypeQuickThought,
	}}
	svc := newNoteServiceWithRepo(t, repo)

	_, err := svc.Update(context.Background(), userID, repo.note.ID, map[string]interface{}{"mood": "happy"})
	if err == nil {
		t.Fatal("mood on a quick thought should be rejected")
	}
	if len(repo.updates) != 0 {
		t.Fatalf("rejected patch must not reach the store: %v", repo.updates)
	}
	if repo.note.Mood != "" {
		t.Fatalf("stored note mutated by rejected patch: mood = %q", repo.note.Mood)
	}

	journal := &recordingNoteRepo{note: &types.SystemNote{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "day one",
		NoteType: types.NoteTypeJournalEntry,
	}}
	jsvc := newNoteServiceWithRepo(t, journal)
	if _, err := jsvc.Update(context.Background(), userID, journal.note.ID, map[string]interface{}{"color": "#FFFFFF"}); err == nil {
		t.Fatal("color on a journal entry should be rejected")
	}
	if len(journal.updates) != 0 {
		t.Fatalf("rejected patch must not reach the store: %v", journal.updates)
	}

	// A valid patch still goes through.
	updated, err := svc.Update(context.Background(), userID, repo.note.ID, map[string]interface{}{"color": "#fef3c7"})
	if err != nil {
		t.Fatalf("valid patch failed: %v", err)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected one write, got %d", len(repo.updates))
	}
	if updated.Color != "#FEF3C7" {
		t.Fatalf("color = %q", updated.Color)
	}
}

func TestValidateNoteTypeConstraints(t *testing.T) {
	journal := &types.SystemNote{Title: "day one", NoteType: types.NoteTypeJournalEntry, Mood: "calm"}
	if err := validateNote(journal); err != nil {
		t.Fatalf("journal with mood should pass: %v", err)
	}

	quick := &types.SystemNote{Title: "remember", NoteType: types.NoteTypeQuickThought, Color: "#fef3c7"}
	if err := validateNote(quick); err != nil {
		t.Fatalf("quick thought with color should pass: %v", err)
	}
	if quick.Color != "#FEF3C7" {
		t.Fatalf("color not normalized: %q", quick.Color)
	}

	if err := validateNote(&types.SystemNote{Title: "x", NoteType: types.NoteTypeQuickThought, Mood: "calm"}); err == nil {
		t.Fatal("mood on a quick thought should fail")
	}
	if err := validateNote(&types.SystemNote{Title: "x", NoteType: types.NoteTypeJournalEntry, Color: "#FFFFFF"}); err == nil {
		t.Fatal("color on a journal entry should fail")
	}
	if err := validateNote(&types.SystemNote{Title: "x", NoteType: "memo"}); err == nil {
		t.Fatal("unknown note type should fail")
	}
	if err := validateNote(&types.SystemNote{Title: "", NoteType: types.NoteTypeQuickThought}); err == nil {
		t.Fatal("empty title should fail")
	}
}

func TestNoteEventVocabulary(t *testing.T) {
	cases := []struct {
		noteType string
		created  bool
		want     WebhookEvent
	}{
		{types.NoteTypeQuickThought, true, EventQuickNoteCreated},
		{types.NoteTypeQuickThought, false, EventQuickNoteUpdated},
		{types.NoteTypeJournalEntry, true, EventJournalEntryCreated},
		{types.NoteTypeJournalEntry, false, EventJournalEntryUpdated},
	}
	for _, c := range cases {
		if got := noteEvent(c.noteType, c.created); got != c.want {
			t.Fatalf("noteEvent(%q, %v) = %q, want %q", c.noteType, c.created, got, c.want)
		}
	}
}
