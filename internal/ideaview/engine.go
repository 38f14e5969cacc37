// Package ideaview computes the filtered, partitioned, ordered projection of a
// user's idea collection. It is a pure function of its inputs and holds no
// state; callers recompute whenever the collection or the filter changes.
package ideaview

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/types"
)

// FilterSpec describes one request's view constraints. Empty slices and nil
// times mean "no constraint on this axis".
type FilterSpec struct {
	Statuses       []string    `json:"statuses"`
	ContentTypeIDs []uuid.UUID `json:"content_type_ids"`
	PlatformIDs    []uuid.UUID `json:"platform_ids"`
	Priorities     []string    `json:"priorities"`
	EnergyLevels   []string    `json:"energy_levels"`
	CreatedFrom    *time.Time  `json:"created_from"`
	CreatedTo      *time.Time  `json:"created_to"`
	Search         string      `json:"search"`
}

// View is the partitioned projection. Timely ideas always lead and keep the
// source collection's relative order; the non-timely partition is stably
// reordered so priority "best" rows come first.
type View struct {
	Timely    []*types.Idea `json:"timely"`
	NonTimely []*types.Idea `json:"non_timely"`
}

// Ordered flattens the view into render order: timely first, then non-timely.
func (v *View) Ordered() []*types.Idea {
	out := make([]*types.Idea, 0, len(v.Timely)+len(v.NonTimely))
	out = append(out, v.Timely...)
	out = append(out, v.NonTimely...)
	return out
}

// Stats aggregates the unfiltered collection. TimelyActive excludes archived
// and recycled ideas so the count matches what a default view can show.
type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	TimelyActive int            `json:"timely_active"`
}

// Compute filters ideas against spec, partitions by is_timely preserving
// source order, and reorders only the non-timely partition best-first.
func Compute(ideas []*types.Idea, spec FilterSpec) *View {
	view := &View{
		Timely:    []*types.Idea{},
		NonTimely: []*types.Idea{},
	}
	for _, idea := range ideas {
		if !matches(idea, spec) {
			continue
		}
		if idea.IsTimely {
			view.Timely = append(view.Timely, idea)
		} else {
			view.NonTimely = append(view.NonTimely, idea)
		}
	}
	view.NonTimely = bestFirst(view.NonTimely)
	return view
}

// ComputeStats aggregates over the full collection regardless of any filter.
func ComputeStats(ideas []*types.Idea) *Stats {
	stats := &Stats{ByStatus: make(map[string]int, len(types.AllStatuses))}
	for _, s := range types.AllStatuses {
		stats.ByStatus[s] = 0
	}
	for _, idea := range ideas {
		stats.Total++
		stats.ByStatus[idea.Status]++
		if idea.IsTimely && idea.Status != types.StatusArchived && idea.Status != types.StatusRecycled {
			stats.TimelyActive++
		}
	}
	return stats
}

// matches applies the gates in order, short-circuiting on the first failure.
func matches(idea *types.Idea, spec FilterSpec) bool {
	// Status gate. With no explicit filter, archived and recycled ideas are
	// suppressed; an explicit filter is applied literally.
	if len(spec.Statuses) == 0 {
		if idea.Status == types.StatusArchived || idea.Status == types.StatusRecycled {
			return false
		}
	} else if !containsString(spec.Statuses, idea.Status) {
		return false
	}

	// Set-membership gates. A null field never matches a non-empty set.
	if len(spec.ContentTypeIDs) > 0 {
		if idea.ContentTypeID == nil || !containsUUID(spec.ContentTypeIDs, *idea.ContentTypeID) {
			return false
		}
	}
	if len(spec.PlatformIDs) > 0 {
		if idea.PlatformID == nil || !containsUUID(spec.PlatformIDs, *idea.PlatformID) {
			return false
		}
	}
	if len(spec.Priorities) > 0 && !containsString(spec.Priorities, idea.Priority) {
		return false
	}
	if len(spec.EnergyLevels) > 0 {
		if idea.EnergyLevel == nil || !containsString(spec.EnergyLevels, *idea.EnergyLevel) {
			return false
		}
	}

	// Date-range gate against creation time.
	if spec.CreatedFrom != nil && idea.CreatedAt.Before(*spec.CreatedFrom) {
		return false
	}
	if spec.CreatedTo != nil && idea.CreatedAt.After(*spec.CreatedTo) {
		return false
	}

	// Free-text gate: substring over title OR description, case-insensitive.
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(idea.Title), needle) &&
			!strings.Contains(strings.ToLower(idea.Description), needle) {
			return false
		}
	}
	return true
}

// bestFirst stably moves priority "best" ideas ahead of the rest.
func bestFirst(ideas []*types.Idea) []*types.Idea {
	if len(ideas) < 2 {
		return ideas
	}
	out := make([]*types.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Priority == types.PriorityBest {
			out = append(out, idea)
		}
	}
	for _, idea := range ideas {
		if idea.Priority != types.PriorityBest {
			out = append(out, idea)
		}
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsUUID(set []uuid.UUID, v uuid.UUID) bool {
	for _, id := range set {
		if id == v {
			return true
		}
	}
	return false
}
