package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SparkCallLog records one round-trip through the brainstorming proxy.
type SparkCallLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SparkType    string         `gorm:"size:32;not null" json:"spark_type"`
	Status       string         `gorm:"size:32;not null" json:"status"`
	Request      datatypes.JSON `gorm:"type:jsonb" json:"request"`
	Response     datatypes.JSON `gorm:"type:jsonb" json:"response"`
	ErrorMessage string         `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (SparkCallLog) TableName() string {
	return "spark_call_log"
}
