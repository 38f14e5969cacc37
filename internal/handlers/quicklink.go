package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/services"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type QuickLinkHandler struct {
	quickLinkService services.QuickLinkService
}

func NewQuickLinkHandler(quickLinkService services.QuickLinkService) *QuickLinkHandler {
	return &QuickLinkHandler{quickLinkService: quickLinkService}
}

func (qh *QuickLinkHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := qh.quickLinkService.List(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (qh *QuickLinkHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Name          string     `json:"name"`
		URL           string     `json:"url"`
		LinkType      string     `json:"link_type"`
		ContentTypeID *uuid.UUID `json:"content_type_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	link := types.QuickLink{
		Name:          req.Name,
		URL:           req.URL,
		LinkType:      req.LinkType,
		ContentTypeID: req.ContentTypeID,
	}
	row, err := qh.quickLinkService.Create(c.Request.Context(), userID, &link)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (qh *QuickLinkHandler) Update(c *gin.Context) {
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
	delete(fields, "id")
	delete(fields, "user_id")
	row, err := qh.quickLinkService.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, row)
}

func (qh *QuickLinkHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := qh.quickLinkService.Delete(c.Request.Context(), userID, id); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
