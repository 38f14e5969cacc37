package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

const (
	SparkTypeHooks   = "hooks"
	SparkTypeOutline = "outline"
	SparkTypeTitles  = "titles"
)

var (
	ErrSparkInvalidType    = errors.New("unknown spark type")
	ErrSparkRateLimited    = errors.New("spark rate limit reached")
	ErrSparkQuotaExhausted = errors.New("spark quota exhausted")
)

// sparkPrompts holds the fixed system prompt per spark type.
var sparkPrompts = map[string]string{
	SparkTypeHooks: "You are a creative brainstorming assistant. Given an idea's " +
		"title, description, and content, propose 5 attention-grabbing hooks or " +
		"opening lines. Return them as a numbered list, one per line.",
	SparkTypeOutline: "You are a creative brainstorming assistant. Given an idea's " +
		"title, description, and content, produce a concise content outline with " +
		"5-8 top-level sections, one per line.",
	SparkTypeTitles: "You are a creative brainstorming assistant. Given an idea's " +
		"title, description, and content, propose 8 alternative titles. Return " +
		"them as a numbered list, one per line.",
}

type SparkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	SparkType   string `json:"spark_type"`
}

type SparkService interface {
	Generate(ctx context.Context, userID uuid.UUID, req SparkRequest) (string, error)
}

type sparkService struct {
	db      *gorm.DB
	log     *logger.Logger
	client  ChatClient
	limiter SparkLimiter
	logRepo repos.SparkCallLogRepo
}

func NewSparkService(db *gorm.DB, log *logger.Logger, client ChatClient, limiter SparkLimiter, logRepo repos.SparkCallLogRepo) SparkService {
	return &sparkService{
		db:      db,
		log:     log.With("service", "SparkService"),
		client:  client,
		limiter: limiter,
		logRepo: logRepo,
	}
}

func (ss *sparkService) Generate(ctx context.Context, userID uuid.UUID, req SparkRequest) (string, error) {
	system, ok := sparkPrompts[req.SparkType]
	if !ok {
		return "", ErrSparkInvalidType
	}

	allowed, err := ss.limiter.Allow(ctx, userID)
	if err != nil {
		return "", err
	}
	if !allowed {
		ss.record(ctx, userID, req, "", ErrSparkRateLimited)
		return "", ErrSparkRateLimited
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", req.Title)
	if req.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", req.Description)
	}
	if req.Content != "" {
		fmt.Fprintf(&sb, "Content:\n%s\n", req.Content)
	}

	suggestions, err := ss.client.Complete(ctx, system, sb.String())
	if err != nil {
		err = mapSparkError(err)
		ss.record(ctx, userID, req, "", err)
		return "", err
	}

	ss.record(ctx, userID, req, suggestions, nil)
	return suggestions, nil
}

// mapSparkError translates upstream 429/402 into the sentinels callers map to
// distinct responses; everything else passes through as a generic failure.
func mapSparkError(err error) error {
	var httpErr *chatHTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 429:
			return ErrSparkRateLimited
		case 402:
			return ErrSparkQuotaExhausted
		}
	}
	return err
}

func (ss *sparkService) record(ctx context.Context, userID uuid.UUID, req SparkRequest, suggestions string, callErr error) {
	row := &types.SparkCallLog{
		UserID:    userID,
		SparkType: req.SparkType,
		Status:    "ok",
	}
	if raw, err := json.Marshal(req); err == nil {
		row.Request = raw
	}
	if callErr != nil {
		row.Status = "error"
		row.ErrorMessage = callErr.Error()
	} else if raw, err := json.Marshal(map[string]string{"suggestions": suggestions}); err == nil {
		row.Response = raw
	}
	if err := ss.logRepo.Create(ctx, nil, row); err != nil {
		ss.log.Warn("failed to record spark call", "error", err)
	}
}
