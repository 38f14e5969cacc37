package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	LinkTypeLLM        = "LLM"
	LinkTypeBizLink    = "Biz Link"
	LinkTypeAutomation = "Automation"
	LinkTypeMultiple   = "Multiple"
)

// FixedLinkTypes is the built-in link_type vocabulary. Any other non-empty
// value is a custom type and is preserved verbatim.
var FixedLinkTypes = []string{LinkTypeLLM, LinkTypeBizLink, LinkTypeAutomation, LinkTypeMultiple}

func IsFixedLinkType(lt string) bool {
	for _, t := range FixedLinkTypes {
		if t == lt {
			return true
		}
	}
	return false
}

type QuickLink struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	URL           string       `gorm:"not null" json:"url"`
	LinkType      string       `gorm:"size:100" json:"link_type"`
	ContentTypeID *uuid.UUID   `gorm:"type:uuid;index" json:"content_type_id"`
	ContentType   *ContentType `gorm:"constraint:OnDelete:SET NULL;foreignKey:ContentTypeID;references:ID" json:"content_type,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (QuickLink) TableName() string {
	return "quick_link"
}
