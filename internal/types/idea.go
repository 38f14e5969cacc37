package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityNone   = "none"
	PriorityGood   = "good"
	PriorityBetter = "better"
	PriorityBest   = "best"

	StatusHold       = "hold"
	StatusDeveloping = "developing"
	StatusReady      = "ready"
	StatusScheduled  = "scheduled"
	StatusArchived   = "archived"
	StatusRecycled   = "recycled"

	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"

	EstimateQuick    = "quick"
	EstimateHour     = "hour"
	EstimateDay      = "day"
	EstimateWeekPlus = "week_plus"
)

// AllStatuses is the lifecycle order used for per-status stat buckets.
var AllStatuses = []string{
	StatusHold,
	StatusDeveloping,
	StatusReady,
	StatusScheduled,
	StatusArchived,
	StatusRecycled,
}

var validPriorities = map[string]struct{}{
	PriorityNone: {}, PriorityGood: {}, PriorityBetter: {}, PriorityBest: {},
}

var validStatuses = map[string]struct{}{
	StatusHold: {}, StatusDeveloping: {}, StatusReady: {},
	StatusScheduled: {}, StatusArchived: {}, StatusRecycled: {},
}

var validEnergyLevels = map[string]struct{}{
	EnergyLow: {}, EnergyMedium: {}, EnergyHigh: {},
}

var validTimeEstimates = map[string]struct{}{
	EstimateQuick: {}, EstimateHour: {}, EstimateDay: {}, EstimateWeekPlus: {},
}

func IsValidPriority(p string) bool {
	_, ok := validPriorities[p]
	return ok
}

func IsValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

func IsValidEnergyLevel(e string) bool {
	_, ok := validEnergyLevels[e]
	return ok
}

func IsValidTimeEstimate(e string) bool {
	_, ok := validTimeEstimates[e]
	return ok
}

type Idea struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string       `gorm:"not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Content       string       `gorm:"type:text" json:"content"`
	ContentTypeID *uuid.UUID   `gorm:"type:uuid;index" json:"content_type_id"`
	ContentType   *ContentType `gorm:"constraint:OnDelete:SET NULL;foreignKey:ContentTypeID;references:ID" json:"content_type,omitempty"`
	PlatformID    *uuid.UUID   `gorm:"type:uuid;index" json:"platform_id"`
	Platform      *Platform    `gorm:"constraint:OnDelete:SET NULL;foreignKey:PlatformID;references:ID" json:"platform,omitempty"`
	Priority      string       `gorm:"not null;default:'none'" json:"priority"`
	Status        string       `gorm:"not null;default:'developing';index" json:"status"`
	IsTimely      bool         `gorm:"not null;default:false" json:"is_timely"`
	ScheduledDate *time.Time   `gorm:"column:scheduled_date" json:"scheduled_date"`
	Source        string       `gorm:"size:255" json:"source"`
	NextAction    string       `gorm:"size:500" json:"next_action"`
	EnergyLevel   *string      `gorm:"size:16" json:"energy_level"`
	TimeEstimate  *string      `gorm:"size:16" json:"time_estimate"`
	CreatedAt     time.Time    `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Idea) TableName() string {
	return "idea"
}
