package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoteTypeQuickThought = "quick_thought"
	NoteTypeJournalEntry = "journal_entry"
)

func IsValidNoteType(nt string) bool {
	return nt == NoteTypeQuickThought || nt == NoteTypeJournalEntry
}

// SystemNote covers both journal entries and quick thoughts. Mood applies to
// journal entries only, color to quick thoughts only.
type SystemNote struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"type:text" json:"content"`
	NoteType   string     `gorm:"not null;index" json:"note_type"`
	PlatformID *uuid.UUID `gorm:"type:uuid;index" json:"platform_id"`
	Platform   *Platform  `gorm:"constraint:OnDelete:SET NULL;foreignKey:PlatformID;references:ID" json:"platform,omitempty"`
	IdeaID     *uuid.UUID `gorm:"type:uuid;index" json:"idea_id"`
	Idea       *Idea      `gorm:"constraint:OnDelete:SET NULL;foreignKey:IdeaID;references:ID" json:"idea,omitempty"`
	EntryDate  *time.Time `gorm:"column:entry_date" json:"entry_date"`
	Mood       string     `gorm:"size:50" json:"mood"`
	Color      string     `gorm:"size:7" json:"color"`
	Pinned     bool       `gorm:"not null;default:false" json:"pinned"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (SystemNote) TableName() string {
	return "system_note"
}
