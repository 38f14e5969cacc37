package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/ideaview"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type IdeaService interface {
	// ListView returns the filtered/partitioned projection plus stats over
	// the unfiltered collection.
	ListView(ctx context.Context, userID uuid.UUID, spec ideaview.FilterSpec) (*ideaview.View, *ideaview.Stats, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)
	Create(ctx context.Context, userID uuid.UUID, idea *types.Idea, tagIDs []uuid.UUID) (*types.Idea, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.Idea, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	Archive(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)
	Restore(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)
	Recycle(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)
	Duplicate(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)

	GetTagIDs(ctx context.Context, userID, id uuid.UUID) ([]uuid.UUID, error)
	ReplaceTags(ctx context.Context, userID, id uuid.UUID, tagIDs []uuid.UUID) error
}

type ideaService struct {
	db          *gorm.DB
	log         *logger.Logger
	ideaRepo    repos.IdeaRepo
	ideaTagRepo repos.IdeaTagRepo
	webhookSink WebhookSink
}

func NewIdeaService(db *gorm.DB, log *logger.Logger, ideaRepo repos.IdeaRepo, ideaTagRepo repos.IdeaTagRepo, webhookSink WebhookSink) IdeaService {
	return &ideaService{
		db:          db,
		log:         log.With("service", "IdeaService"),
		ideaRepo:    ideaRepo,
		ideaTagRepo: ideaTagRepo,
		webhookSink: webhookSink,
	}
}

func (is *ideaService) ListView(ctx context.Context, userID uuid.UUID, spec ideaview.FilterSpec) (*ideaview.View, *ideaview.Stats, error) {
	ideas, err := is.ideaRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, nil, err
	}
	return ideaview.Compute(ideas, spec), ideaview.ComputeStats(ideas), nil
}

func (is *ideaService) GetByID(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error) {
	return is.ideaRepo.GetByID(ctx, nil, id, userID)
}

func (is *ideaService) Create(ctx context.Context, userID uuid.UUID, idea *types.Idea, tagIDs []uuid.UUID) (*types.Idea, error) {
	idea.UserID = userID
	if err := validateIdea(idea); err != nil {
		return nil, err
	}
	var created *types.Idea
	err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		idea.ID = uuid.New()
		rows, cErr := is.ideaRepo.Create(ctx, tx, []*types.Idea{idea})
		if cErr != nil {
			return fmt.Errorf("Failed to create idea: %w", cErr)
		}
		created = rows[0]
		if len(tagIDs) > 0 {
			joins := make([]*types.IdeaTag, 0, len(tagIDs))
			for _, tagID := range tagIDs {
				joins = append(joins, &types.IdeaTag{IdeaID: created.ID, TagID: tagID})
			}
			if _, jErr := is.ideaTagRepo.Create(ctx, tx, joins); jErr != nil {
				return fmt.Errorf("Failed to attach tags: %w", jErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Re-fetch so joined content type and platform come back populated.
	full, err := is.ideaRepo.GetByID(ctx, nil, created.ID, userID)
	if err != nil {
		return nil, err
	}
	is.webhookSink.Notify(EventIdeaCreated, ideaEventData(full))
	return full, nil
}

func (is *ideaService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*types.Idea, error) {
	if err := validateIdeaFields(fields); err != nil {
		return nil, err
	}
	if err := is.ideaRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	full, err := is.ideaRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	event := EventIdeaUpdated
	if _, ok := fields["status"]; ok {
		event = EventIdeaStatusChanged
	}
	is.webhookSink.Notify(event, ideaEventData(full))
	return full, nil
}

func (is *ideaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return is.ideaRepo.Delete(ctx, nil, id, userID)
}

func (is *ideaService) Archive(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error) {
	return is.transition(ctx, userID, id, types.StatusArchived, true)
}

func (is *ideaService) Restore(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error) {
	return is.transition(ctx, userID, id, types.StatusDeveloping, false)
}

func (is *ideaService) Recycle(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error) {
	return is.transition(ctx, userID, id, types.StatusRecycled, true)
}

func (is *ideaService) transition(ctx context.Context, userID, id uuid.UUID, status string, clearSchedule bool) (*types.Idea, error) {
	fields := map[string]interface{}{"status": status}
	if clearSchedule {
		fields["scheduled_date"] = nil
	}
	if err := is.ideaRepo.UpdateFields(ctx, nil, id, userID, fields); err != nil {
		return nil, err
	}
	full, err := is.ideaRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	is.webhookSink.Notify(EventIdeaStatusChanged, ideaEventData(full))
	return full, nil
}

func (is *ideaService) Duplicate(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error) {
	src, err := is.ideaRepo.GetByID(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	tagIDs, err := is.ideaTagRepo.ListTagIDsByIdea(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	dup := copyForDuplicate(src)
	var created *types.Idea
	err = is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup.ID = uuid.New()
		rows, cErr := is.ideaRepo.Create(ctx, tx, []*types.Idea{dup})
		if cErr != nil {
			return fmt.Errorf("Failed to create duplicate: %w", cErr)
		}
		created = rows[0]
		if len(tagIDs) > 0 {
			joins := make([]*types.IdeaTag, 0, len(tagIDs))
			for _, tagID := range tagIDs {
				joins = append(joins, &types.IdeaTag{IdeaID: created.ID, TagID: tagID})
			}
			if _, jErr := is.ideaTagRepo.Create(ctx, tx, joins); jErr != nil {
				return fmt.Errorf("Failed to copy tags: %w", jErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	full, err := is.ideaRepo.GetByID(ctx, nil, created.ID, userID)
	if err != nil {
		return nil, err
	}
	is.webhookSink.Notify(EventIdeaCreated, ideaEventData(full))
	return full, nil
}

func (is *ideaService) GetTagIDs(ctx context.Context, userID, id uuid.UUID) ([]uuid.UUID, error) {
	if _, err := is.ideaRepo.GetByID(ctx, nil, id, userID); err != nil {
		return nil, err
	}
	return is.ideaTagRepo.ListTagIDsByIdea(ctx, nil, id)
}

// ReplaceTags swaps the idea's whole tag set: delete all, then insert the new
// set, skipping the insert entirely when the set is empty. Both steps run in
// one transaction so a failure cannot strip the idea of its tags.
func (is *ideaService) ReplaceTags(ctx context.Context, userID, id uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := is.ideaRepo.GetByID(ctx, nil, id, userID); err != nil {
		return err
	}
	return is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := is.ideaTagRepo.DeleteByIdea(ctx, tx, id); err != nil {
			return fmt.Errorf("Failed to clear tags: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		joins := make([]*types.IdeaTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			joins = append(joins, &types.IdeaTag{IdeaID: id, TagID: tagID})
		}
		if _, err := is.ideaTagRepo.Create(ctx, tx, joins); err != nil {
			return fmt.Errorf("Failed to insert tags: %w", err)
		}
		return nil
	})
}

// copyForDuplicate builds the new row for a duplicate: everything copied
// except identity and timestamps, title marked, status and timely flag reset.
func copyForDuplicate(src *types.Idea) *types.Idea {
	dup := &types.Idea{
		UserID:        src.UserID,
		Title:         src.Title + " (Copy)",
		Description:   src.Description,
		Content:       src.Content,
		ContentTypeID: src.ContentTypeID,
		PlatformID:    src.PlatformID,
		Priority:      src.Priority,
		Status:        types.StatusDeveloping,
		IsTimely:      false,
		ScheduledDate: src.ScheduledDate,
		Source:        src.Source,
		NextAction:    src.NextAction,
		EnergyLevel:   src.EnergyLevel,
		TimeEstimate:  src.TimeEstimate,
	}
	return dup
}

func validateIdea(idea *types.Idea) error {
	idea.Title = normalization.TrimInput(idea.Title)
	if idea.Title == "" {
		return fmt.Errorf("idea title is required")
	}
	if idea.Priority == "" {
		idea.Priority = types.PriorityNone
	}
	if idea.Status == "" {
		idea.Status = types.StatusDeveloping
	}
	if !types.IsValidPriority(idea.Priority) {
		return fmt.Errorf("invalid priority %q", idea.Priority)
	}
	if !types.IsValidStatus(idea.Status) {
		return fmt.Errorf("invalid status %q", idea.Status)
	}
	if idea.EnergyLevel != nil && !types.IsValidEnergyLevel(*idea.EnergyLevel) {
		return fmt.Errorf("invalid energy level %q", *idea.EnergyLevel)
	}
	if idea.TimeEstimate != nil && !types.IsValidTimeEstimate(*idea.TimeEstimate) {
		return fmt.Errorf("invalid time estimate %q", *idea.TimeEstimate)
	}
	idea.Source = normalization.Truncate(idea.Source, 255)
	idea.NextAction = normalization.Truncate(idea.NextAction, 500)
	return nil
}

func validateIdeaFields(fields map[string]interface{}) error {
	if v, ok := fields["title"]; ok {
		title, _ := v.(string)
		title = normalization.TrimInput(title)
		if title == "" {
			return fmt.Errorf("idea title is required")
		}
		fields["title"] = title
	}
	if v, ok := fields["priority"]; ok {
		p, _ := v.(string)
		if !types.IsValidPriority(p) {
			return fmt.Errorf("invalid priority %q", p)
		}
	}
	if v, ok := fields["status"]; ok {
		s, _ := v.(string)
		if !types.IsValidStatus(s) {
			return fmt.Errorf("invalid status %q", s)
		}
	}
	if v, ok := fields["energy_level"]; ok && v != nil {
		e, _ := v.(string)
		if !types.IsValidEnergyLevel(e) {
			return fmt.Errorf("invalid energy level %q", e)
		}
	}
	if v, ok := fields["time_estimate"]; ok && v != nil {
		e, _ := v.(string)
		if !types.IsValidTimeEstimate(e) {
			return fmt.Errorf("invalid time estimate %q", e)
		}
	}
	return nil
}

func ideaEventData(idea *types.Idea) map[string]any {
	data := map[string]any{
		"id":     idea.ID.String(),
		"title":  idea.Title,
		"type":   "idea",
		"status": idea.Status,
	}
	if idea.ContentTypeID != nil {
		data["content_type_id"] = idea.ContentTypeID.String()
	}
	if idea.PlatformID != nil {
		data["platform_id"] = idea.PlatformID.String()
	}
	return data
}
