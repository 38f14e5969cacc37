package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type WebhookDeliveryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.WebhookDelivery) error
}

type webhookDeliveryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWebhookDeliveryRepo(db *gorm.DB, baseLog *logger.Logger) WebhookDeliveryRepo {
	return &webhookDeliveryRepo{db: db, log: baseLog.With("repo", "WebhookDeliveryRepo")}
}

func (wr *webhookDeliveryRepo) Create(ctx context.Context, tx *gorm.DB, row *types.WebhookDelivery) error {
	conn := tx
	if conn == nil {
		conn = wr.db
	}
	return conn.WithContext(ctx).Create(row).Error
}
