package types

import (
	"time"

	"github.com/google/uuid"
)

type ContentTemplate struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	Content       string       `gorm:"type:text" json:"content"`
	ContentTypeID *uuid.UUID   `gorm:"type:uuid;index" json:"content_type_id"`
	ContentType   *ContentType `gorm:"constraint:OnDelete:SET NULL;foreignKey:ContentTypeID;references:ID" json:"content_type,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (ContentTemplate) TableName() string {
	return "content_template"
}
