package handlers

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/types"
)

func TestParseFilterSpecEmpty(t *testing.T) {
	spec, err := parseFilterSpec(url.Values{})
	if err != nil {
		t.Fatalf("parseFilterSpec: %v", err)
	}
	if len(spec.Statuses) != 0 || len(spec.ContentTypeIDs) != 0 || len(spec.PlatformIDs) != 0 ||
		len(spec.Priorities) != 0 || len(spec.EnergyLevels) != 0 ||
		spec.CreatedFrom != nil || spec.CreatedTo != nil || spec.Search != "" {
		t.Fatalf("empty query should yield an unconstrained spec: %+v", spec)
	}
}

func TestParseFilterSpecFull(t *testing.T) {
	ctID := uuid.New()
	pfID := uuid.New()
	values := url.Values{}
	values.Set("statuses", "developing, scheduled")
	values.Set("content_type_ids", ctID.String())
	values.Set("platform_ids", pfID.String())
	values.Set("priorities", "best")
	values.Set("energy_levels", "low,high")
	values.Set("created_from", "2025-01-01")
	values.Set("created_to", "2025-06-30T23:59:59Z")
	values.Set("search", " podcast ")

	spec, err := parseFilterSpec(values)
	if err != nil {
		t.Fatalf("parseFilterSpec: %v", err)
	}
	if len(spec.Statuses) != 2 || spec.Statuses[0] != types.StatusDeveloping || spec.Statuses[1] != types.StatusScheduled {
		t.Fatalf("statuses = %v", spec.Statuses)
	}
	if len(spec.ContentTypeIDs) != 1 || spec.ContentTypeIDs[0] != ctID {
		t.Fatalf("content type ids = %v", spec.ContentTypeIDs)
	}
	if len(spec.PlatformIDs) != 1 || spec.PlatformIDs[0] != pfID {
		t.Fatalf("platform ids = %v", spec.PlatformIDs)
	}
	if len(spec.EnergyLevels) != 2 {
		t.Fatalf("energy levels = %v", spec.EnergyLevels)
	}
	if spec.CreatedFrom == nil || !spec.CreatedFrom.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("created_from = %v", spec.CreatedFrom)
	}
	if spec.CreatedTo == nil || spec.CreatedTo.Year() != 2025 {
		t.Fatalf("created_to = %v", spec.CreatedTo)
	}
	if spec.Search != "podcast" {
		t.Fatalf("search = %q", spec.Search)
	}
}

func TestParseFilterSpecRejectsBadValues(t *testing.T) {
	bad := []url.Values{
		{"statuses": []string{"parked"}},
		{"priorities": []string{"urgent"}},
		{"energy_levels": []string{"frantic"}},
		{"content_type_ids": []string{"not-a-uuid"}},
		{"platform_ids": []string{"also-bad"}},
		{"created_from": []string{"yesterday"}},
	}
	for _, values := range bad {
		if _, err := parseFilterSpec(values); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
}
