package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/ideaview"
	"github.com/calebwray/ideawell-backend/internal/requestdata"
	"github.com/calebwray/ideawell-backend/internal/services"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type IdeaHandler struct {
	ideaService services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("no session"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func splitParam(values url.Values, key string) []string {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseFilterSpec reads the view constraints from query parameters. Multi
// value axes are comma separated; dates accept RFC3339 or YYYY-MM-DD.
func parseFilterSpec(values url.Values) (ideaview.FilterSpec, error) {
	var spec ideaview.FilterSpec
	spec.Statuses = splitParam(values, "statuses")
	spec.Priorities = splitParam(values, "priorities")
	spec.EnergyLevels = splitParam(values, "energy_levels")
	spec.Search = strings.TrimSpace(values.Get("search"))

	for _, raw := range splitParam(values, "content_type_ids") {
		id, err := uuid.Parse(raw)
		if err != nil {
			return spec, fmt.Errorf("invalid content_type_id %q", raw)
		}
		spec.ContentTypeIDs = append(spec.ContentTypeIDs, id)
	}
	for _, raw := range splitParam(values, "platform_ids") {
		id, err := uuid.Parse(raw)
		if err != nil {
			return spec, fmt.Errorf("invalid platform_id %q", raw)
		}
		spec.PlatformIDs = append(spec.PlatformIDs, id)
	}

	for _, s := range spec.Statuses {
		if !types.IsValidStatus(s) {
			return spec, fmt.Errorf("invalid status %q", s)
		}
	}
	for _, p := range spec.Priorities {
		if !types.IsValidPriority(p) {
			return spec, fmt.Errorf("invalid priority %q", p)
		}
	}
	for _, e := range spec.EnergyLevels {
		if !types.IsValidEnergyLevel(e) {
			return spec, fmt.Errorf("invalid energy level %q", e)
		}
	}

	if raw := values.Get("created_from"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return spec, err
		}
		spec.CreatedFrom = &t
	}
	if raw := values.Get("created_to"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return spec, err
		}
		spec.CreatedTo = &t
	}
	return spec, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func (ih *IdeaHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	spec, err := parseFilterSpec(c.Request.URL.Query())
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_filter", err)
		return
	}
	view, stats, err := ih.ideaService.ListView(c.Request.Context(), userID, spec)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"timely":     view.Timely,
		"non_timely": view.NonTimely,
		"ordered":    view.Ordered(),
		"stats":      stats,
	})
}

func (ih *IdeaHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	idea, err := ih.ideaService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, idea)
}

func (ih *IdeaHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Title         string      `json:"title"`
		Description   string      `json:"description"`
		Content       string      `json:"content"`
		ContentTypeID *uuid.UUID  `json:"content_type_id"`
		PlatformID    *uuid.UUID  `json:"platform_id"`
		Priority      string      `json:"priority"`
		Status        string      `json:"status"`
		IsTimely      bool        `json:"is_timely"`
		ScheduledDate *time.Time  `json:"scheduled_date"`
		Source        string      `json:"source"`
		NextAction    string      `json:"next_action"`
		EnergyLevel   *string     `json:"energy_level"`
		TimeEstimate  *string     `json:"time_estimate"`
		TagIDs        []uuid.UUID `json:"tag_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	idea := types.Idea{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		ContentTypeID: req.ContentTypeID,
		PlatformID:    req.PlatformID,
		Priority:      req.Priority,
		Status:        req.Status,
		IsTimely:      req.IsTimely,
		ScheduledDate: req.ScheduledDate,
		Source:        req.Source,
		NextAction:    req.NextAction,
		EnergyLevel:   req.EnergyLevel,
		TimeEstimate:  req.TimeEstimate,
	}
	created, err := ih.ideaService.Create(c.Request.Context(), userID, &idea, req.TagIDs)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ih *IdeaHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	// Identity and ownership are not patchable.
	delete(fields, "id")
	delete(fields, "user_id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	updated, err := ih.ideaService.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (ih *IdeaHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ih.ideaService.Delete(c.Request.Context(), userID, id); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (ih *IdeaHandler) Archive(c *gin.Context)   { ih.transition(c, ih.ideaService.Archive) }
func (ih *IdeaHandler) Restore(c *gin.Context)   { ih.transition(c, ih.ideaService.Restore) }
func (ih *IdeaHandler) Recycle(c *gin.Context)   { ih.transition(c, ih.ideaService.Recycle) }
func (ih *IdeaHandler) Duplicate(c *gin.Context) { ih.transition(c, ih.ideaService.Duplicate) }

func (ih *IdeaHandler) transition(c *gin.Context, op func(ctx context.Context, userID, id uuid.UUID) (*types.Idea, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	idea, err := op(c.Request.Context(), userID, id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, idea)
}

func (ih *IdeaHandler) GetTags(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	tagIDs, err := ih.ideaService.GetTagIDs(c.Request.Context(), userID, id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"tag_ids": tagIDs})
}

func (ih *IdeaHandler) ReplaceTags(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		TagIDs []uuid.UUID `json:"tag_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := ih.ideaService.ReplaceTags(c.Request.Context(), userID, id, req.TagIDs); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"tag_ids": req.TagIDs})
}
