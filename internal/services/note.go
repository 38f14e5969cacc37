package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type NoteService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.SystemNote, error)
	Create(ctx context.Context, userID uuid.UUID, note *types.SystemNote) (*types.SystemNote, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.SystemNote, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type noteService struct {
	db          *gorm.DB
	log         *logger.Logger
	noteRepo    repos.SystemNoteRepo
	webhookSink WebhookSink
}

func NewNoteService(db *gorm.DB, log *logger.Logger, noteRepo repos.SystemNoteRepo, webhookSink WebhookSink) NoteService {
	return &noteService{
		db:          db,
		log:         log.With("service", "NoteService"),
		noteRepo:    noteRepo,
		webhookSink: webhookSink,
	}
}

func (ns *noteService) List(ctx context.Context, userID uuid.UUID) ([]*types.SystemNote, error) {
	return ns.noteRepo.ListByUser(ctx, nil, userID)
}

func (ns *noteService) Create(ctx context.Context, userID uuid.UUID, note *types.SystemNote) (*types.SystemNote, error) {
	note.UserID = userID
	if err := validateNote(note); err != nil {
		return nil, err
	}
	rows, err := ns.noteRepo.Create(ctx, nil, []*types.SystemNote{note})
	if err != nil {
		return nil, err
	}
	created := rows[0]
	ns.webhookSink.Notify(noteEvent(created.NoteType, true), noteEventData(created))
	return created, nil
}

func (ns *noteService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.SystemNote, error) {
	// note_type is fixed at creation; a patch cannot flip a journal entry
	// into a quick thought.
	delete(fields, "note_type")
	if v, ok := fields["title"]; ok {
		title, _ := v.(string)
		title = normalization.TrimInput(title)
		if title == "" {
			return nil, fmt.Errorf("note title is required")
		}
		fields["title"] = title
	}
	if v, ok := fields["color"]; ok {
		if raw, _ := v.(string); raw != "" {
			parsed, err := normalization.ParseHexColor(raw)
			if err != nil {
				return nil, err
			}
			fields["color"] = parsed
		}
	}
	current, err := ns.noteRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	// Constraints are checked against the merged row before anything is
	// written; a rejected patch leaves the stored note untouched.
	if err := checkNoteTypeConstraints(mergeNoteFields(current, fields)); err != nil {
		return nil, err
	}
	if err := ns.noteRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	updated, err := ns.noteRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	ns.webhookSink.Notify(noteEvent(updated.NoteType, false), noteEventData(updated))
	return updated, nil
}

// mergeNoteFields previews what a patch would leave in the constrained
// columns without touching the stored row.
func mergeNoteFields(current *types.SystemNote, fields map[string]interface{}) *types.SystemNote {
	merged := *current
	if v, ok := fields["mood"]; ok {
		merged.Mood, _ = v.(string)
	}
	if v, ok := fields["color"]; ok {
		merged.Color, _ = v.(string)
	}
	return &merged
}

func (ns *noteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ns.noteRepo.Delete(ctx, nil, id, userID)
}

func validateNote(note *types.SystemNote) error {
	note.Title = normalization.TrimInput(note.Title)
	if note.Title == "" {
		return fmt.Errorf("note title is required")
	}
	if !types.IsValidNoteType(note.NoteType) {
		return fmt.Errorf("invalid note type %q", note.NoteType)
	}
	if note.Color != "" {
		parsed, err := normalization.ParseHexColor(note.Color)
		if err != nil {
			return err
		}
		note.Color = parsed
	}
	return checkNoteTypeConstraints(note)
}

// Mood belongs to journal entries, color to quick thoughts.
func checkNoteTypeConstraints(note *types.SystemNote) error {
	if note.Mood != "" && note.NoteType != types.NoteTypeJournalEntry {
		return fmt.Errorf("mood is only valid on journal entries")
	}
	if note.Color != "" && note.NoteType != types.NoteTypeQuickThought {
		return fmt.Errorf("color is only valid on quick thoughts")
	}
	return nil
}

func noteEvent(noteType string, created bool) WebhookEvent {
	if noteType == types.NoteTypeJournalEntry {
		if created {
			return EventJournalEntryCreated
		}
		return EventJournalEntryUpdated
	}
	if created {
		return EventQuickNoteCreated
	}
	return EventQuickNoteUpdated
}

func noteEventData(note *types.SystemNote) map[string]any {
	data := map[string]any{
		"id":    note.ID.String(),
		"title": note.Title,
		"type":  note.NoteType,
	}
	if note.PlatformID != nil {
		data["platform_id"] = note.PlatformID.String()
	}
	if note.IdeaID != nil {
		data["idea_id"] = note.IdeaID.String()
	}
	return data
}
