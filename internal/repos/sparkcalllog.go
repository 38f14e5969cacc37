package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type SparkCallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.SparkCallLog) error
}

type sparkCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSparkCallLogRepo(db *gorm.DB, baseLog *logger.Logger) SparkCallLogRepo {
	return &sparkCallLogRepo{db: db, log: baseLog.With("repo", "SparkCallLogRepo")}
}

func (sr *sparkCallLogRepo) Create(ctx context.Context, tx *gorm.DB, row *types.SparkCallLog) error {
	conn := tx
	if conn == nil {
		conn = sr.db
	}
	return conn.WithContext(ctx).Create(row).Error
}
