package types

import (
	"time"

	"github.com/google/uuid"
)

// IdeaFile holds attachment metadata only; bytes live in object storage under
// StorageKey.
type IdeaFile struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	IdeaID       uuid.UUID `gorm:"type:uuid;not null;index" json:"idea_id"`
	Idea         *Idea     `gorm:"constraint:OnDelete:CASCADE;foreignKey:IdeaID;references:ID" json:"-"`
	OriginalName string    `gorm:"column:original_name;not null" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	SizeBytes    int64     `gorm:"column:size_bytes" json:"size_bytes"`
	StorageKey   string    `gorm:"column:storage_key;not null" json:"storage_key"`
	FileURL      string    `gorm:"column:file_url" json:"file_url"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IdeaFile) TableName() string {
	return "idea_file"
}
