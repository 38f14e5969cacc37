package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookDelivery is a local log row per outbound webhook attempt. Delivery is
// fire-and-forget; rows exist for debugging only and are never surfaced.
type WebhookDelivery struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Event        string         `gorm:"size:64;not null" json:"event"`
	Payload      datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	Succeeded    bool           `gorm:"not null;default:false" json:"succeeded"`
	StatusCode   int            `json:"status_code"`
	ErrorMessage string         `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (WebhookDelivery) TableName() string {
	return "webhook_delivery"
}
