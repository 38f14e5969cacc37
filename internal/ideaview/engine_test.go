package ideaview

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/types"
)

func mkIdea(title, status, priority string, timely bool) *types.Idea {
	return &types.Idea{
		ID:       uuid.New(),
		Title:    title,
		Status:   status,
		Priority: priority,
		IsTimely: timely,
	}
}

func titles(ideas []*types.Idea) []string {
	out := make([]string, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, i.Title)
	}
	return out
}

func assertTitles(t *testing.T, got []*types.Idea, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, titles(got))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	}
}

func TestDefaultViewSuppressesArchivedAndRecycled(t *testing.T) {
	ideas := []*types.Idea{
		mkIdea("active", types.StatusDeveloping, types.PriorityNone, false),
		mkIdea("shelved", types.StatusArchived, types.PriorityNone, false),
		mkIdea("binned", types.StatusRecycled, types.PriorityNone, false),
	}

	view := Compute(ideas, FilterSpec{})
	assertTitles(t, view.Ordered(), "active")

	view = Compute(ideas, FilterSpec{Statuses: []string{types.StatusArchived}})
	assertTitles(t, view.Ordered(), "shelved")

	view = Compute(ideas, FilterSpec{Statuses: []string{types.StatusArchived, types.StatusRecycled}})
	assertTitles(t, view.Ordered(), "shelved", "binned")
}

func TestTimelyPartitionIgnoresPriority(t *testing.T) {
	ideas := []*types.Idea{
		mkIdea("t-none", types.StatusDeveloping, types.PriorityNone, true),
		mkIdea("t-best", types.StatusDeveloping, types.PriorityBest, true),
		mkIdea("t-good", types.StatusDeveloping, types.PriorityGood, true),
	}

	view := Compute(ideas, FilterSpec{})
	if len(view.NonTimely) != 0 {
		t.Fatalf("expected empty non-timely partition, got %v", titles(view.NonTimely))
	}
	// Source order preserved; "best" never floats within timely.
	assertTitles(t, view.Timely, "t-none", "t-best", "t-good")
}

func TestNonTimelyBestFirstIsStable(t *testing.T) {
	ideas := []*types.Idea{
		mkIdea("a-good", types.StatusDeveloping, types.PriorityGood, false),
		mkIdea("b-best", types.StatusDeveloping, types.PriorityBest, false),
		mkIdea("c-none", types.StatusDeveloping, types.PriorityNone, false),
		mkIdea("d-best", types.StatusDeveloping, types.PriorityBest, false),
		mkIdea("e-better", types.StatusDeveloping, types.PriorityBetter, false),
	}

	view := Compute(ideas, FilterSpec{})
	assertTitles(t, view.NonTimely, "b-best", "d-best", "a-good", "c-none", "e-better")
}

func TestTimelyLeadsNonTimely(t *testing.T) {
	scheduled := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	a := mkIdea("Video: intro", types.StatusScheduled, types.PriorityBest, false)
	a.ScheduledDate = &scheduled
	b := mkIdea("Blog draft", types.StatusDeveloping, types.PriorityNone, true)
	ideas := []*types.Idea{a, b}

	view := Compute(ideas, FilterSpec{})
	assertTitles(t, view.Ordered(), "Blog draft", "Video: intro")

	view = Compute(ideas, FilterSpec{Statuses: []string{types.StatusScheduled}})
	assertTitles(t, view.Ordered(), "Video: intro")
}

func TestNullFieldNeverMatchesNonEmptySet(t *testing.T) {
	ctID := uuid.New()
	pfID := uuid.New()
	energy := types.EnergyHigh

	with := mkIdea("with", types.StatusDeveloping, types.PriorityNone, false)
	with.ContentTypeID = &ctID
	with.PlatformID = &pfID
	with.EnergyLevel = &energy
	without := mkIdea("without", types.StatusDeveloping, types.PriorityNone, false)
	ideas := []*types.Idea{with, without}

	view := Compute(ideas, FilterSpec{ContentTypeIDs: []uuid.UUID{ctID}})
	assertTitles(t, view.Ordered(), "with")

	view = Compute(ideas, FilterSpec{PlatformIDs: []uuid.UUID{pfID}})
	assertTitles(t, view.Ordered(), "with")

	view = Compute(ideas, FilterSpec{EnergyLevels: []string{types.EnergyHigh}})
	assertTitles(t, view.Ordered(), "with")
}

func TestDateRangeGate(t *testing.T) {
	early := mkIdea("early", types.StatusDeveloping, types.PriorityNone, false)
	early.CreatedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	late := mkIdea("late", types.StatusDeveloping, types.PriorityNone, false)
	late.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ideas := []*types.Idea{late, early}

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	view := Compute(ideas, FilterSpec{CreatedFrom: &from})
	assertTitles(t, view.Ordered(), "late")

	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	view = Compute(ideas, FilterSpec{CreatedTo: &to})
	assertTitles(t, view.Ordered(), "early")

	view = Compute(ideas, FilterSpec{CreatedFrom: &from, CreatedTo: &from})
	assertTitles(t, view.Ordered())
}

func TestSearchMatchesTitleOrDescription(t *testing.T) {
	byTitle := mkIdea("Podcast Launch", types.StatusDeveloping, types.PriorityNone, false)
	byDesc := mkIdea("untitled", types.StatusDeveloping, types.PriorityNone, false)
	byDesc.Description = "notes about the PODCAST format"
	neither := mkIdea("newsletter", types.StatusDeveloping, types.PriorityNone, false)
	ideas := []*types.Idea{byTitle, byDesc, neither}

	view := Compute(ideas, FilterSpec{Search: "podcast"})
	assertTitles(t, view.Ordered(), "Podcast Launch", "untitled")

	// No description means the description side can never match alone.
	view = Compute(ideas, FilterSpec{Search: "format"})
	assertTitles(t, view.Ordered(), "untitled")
}

func TestStatsTotalsEqualStatusSum(t *testing.T) {
	ideas := []*types.Idea{
		mkIdea("a", types.StatusHold, types.PriorityNone, true),
		mkIdea("b", types.StatusDeveloping, types.PriorityNone, false),
		mkIdea("c", types.StatusReady, types.PriorityBest, true),
		mkIdea("d", types.StatusScheduled, types.PriorityNone, false),
		mkIdea("e", types.StatusArchived, types.PriorityNone, true),
		mkIdea("f", types.StatusRecycled, types.PriorityNone, true),
		mkIdea("g", types.StatusDeveloping, types.PriorityNone, false),
	}

	stats := ComputeStats(ideas)
	if stats.Total != 7 {
		t.Fatalf("expected total 7, got %d", stats.Total)
	}
	sum := 0
	for _, s := range types.AllStatuses {
		n, ok := stats.ByStatus[s]
		if !ok {
			t.Fatalf("missing status bucket %q", s)
		}
		sum += n
	}
	if sum != stats.Total {
		t.Fatalf("status buckets sum to %d, want %d", sum, stats.Total)
	}
	// Timely count excludes the archived and recycled rows.
	if stats.TimelyActive != 2 {
		t.Fatalf("expected 2 active timely ideas, got %d", stats.TimelyActive)
	}
}

func TestStatsIgnoreFilters(t *testing.T) {
	ideas := []*types.Idea{
		mkIdea("a", types.StatusDeveloping, types.PriorityNone, false),
		mkIdea("b", types.StatusArchived, types.PriorityNone, false),
	}
	// Stats are computed from the full collection, so a filter that empties
	// the view changes nothing.
	view := Compute(ideas, FilterSpec{Search: "no-such-idea"})
	if len(view.Ordered()) != 0 {
		t.Fatalf("expected empty view, got %v", titles(view.Ordered()))
	}
	stats := ComputeStats(ideas)
	if stats.Total != 2 || stats.ByStatus[types.StatusArchived] != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
