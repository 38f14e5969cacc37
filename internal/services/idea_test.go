package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/types"
)

func TestCopyForDuplicate(t *testing.T) {
	ctID := uuid.New()
	pfID := uuid.New()
	energy := types.EnergyHigh
	estimate := types.EstimateDay
	scheduled := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	src := &types.Idea{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Title:         "Launch video",
		Description:   "desc",
		Content:       "body",
		ContentTypeID: &ctID,
		PlatformID:    &pfID,
		Priority:      types.PriorityBest,
		Status:        types.StatusScheduled,
		IsTimely:      true,
		ScheduledDate: &scheduled,
		Source:        "brainstorm",
		NextAction:    "record",
		EnergyLevel:   &energy,
		TimeEstimate:  &estimate,
		CreatedAt:     time.Now().Add(-time.Hour),
		UpdatedAt:     time.Now().Add(-time.Minute),
	}

	dup := copyForDuplicate(src)

	if dup.Title != "Launch video (Copy)" {
		t.Fatalf("unexpected title %q", dup.Title)
	}
	if dup.Status != types.StatusDeveloping {
		t.Fatalf("duplicate must start developing, got %q", dup.Status)
	}
	if dup.IsTimely {
		t.Fatal("duplicate must not be timely")
	}
	if dup.ID != uuid.Nil {
		t.Fatal("duplicate must not carry the source id")
	}
	if !dup.CreatedAt.IsZero() || !dup.UpdatedAt.IsZero() {
		t.Fatal("duplicate must not carry source timestamps")
	}
	if dup.UserID != src.UserID {
		t.Fatal("duplicate must keep the owner")
	}
	if dup.Description != src.Description || dup.Content != src.Content {
		t.Fatal("duplicate must copy text fields")
	}
	if dup.ContentTypeID != src.ContentTypeID || dup.PlatformID != src.PlatformID {
		t.Fatal("duplicate must copy classification")
	}
	if dup.Priority != src.Priority {
		t.Fatal("duplicate must copy priority")
	}
	if dup.EnergyLevel != src.EnergyLevel || dup.TimeEstimate != src.TimeEstimate {
		t.Fatal("duplicate must copy planning fields")
	}
}

func TestValidateIdeaDefaultsAndRejects(t *testing.T) {
	idea := &types.Idea{Title: "  spaced  "}
	if err := validateIdea(idea); err != nil {
		t.Fatalf("validateIdea: %v", err)
	}
	if idea.Title != "spaced" {
		t.Fatalf("title not trimmed: %q", idea.Title)
	}
	if idea.Priority != types.PriorityNone || idea.Status != types.StatusDeveloping {
		t.Fatalf("defaults not applied: %q %q", idea.Priority, idea.Status)
	}

	if err := validateIdea(&types.Idea{Title: ""}); err == nil {
		t.Fatal("empty title should fail")
	}
	if err := validateIdea(&types.Idea{Title: "x", Priority: "urgent"}); err == nil {
		t.Fatal("unknown priority should fail")
	}
	bad := "frantic"
	if err := validateIdea(&types.Idea{Title: "x", EnergyLevel: &bad}); err == nil {
		t.Fatal("unknown energy level should fail")
	}
}

func TestValidateIdeaFields(t *testing.T) {
	if err := validateIdeaFields(map[string]interface{}{"status": "parked"}); err == nil {
		t.Fatal("unknown status should fail")
	}
	fields := map[string]interface{}{"title": "  Trimmed  "}
	if err := validateIdeaFields(fields); err != nil {
		t.Fatalf("validateIdeaFields: %v", err)
	}
	if fields["title"] != "Trimmed" {
		t.Fatalf("title not trimmed: %v", fields["title"])
	}
}
