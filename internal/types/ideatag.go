package types

import (
	"time"

	"github.com/google/uuid"
)

// IdeaTag is the bare many-to-many join between ideas and tags. Membership is
// replaced wholesale per idea, never diffed.
type IdeaTag struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IdeaID    uuid.UUID `gorm:"type:uuid;not null;index:idx_idea_tag,unique" json:"idea_id"`
	Idea      *Idea     `gorm:"constraint:OnDelete:CASCADE;foreignKey:IdeaID;references:ID" json:"-"`
	TagID     uuid.UUID `gorm:"type:uuid;not null;index:idx_idea_tag,unique" json:"tag_id"`
	Tag       *Tag      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TagID;references:ID" json:"-"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (IdeaTag) TableName() string {
	return "idea_tag"
}
