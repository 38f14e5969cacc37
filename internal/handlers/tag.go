package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (th *TagHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := th.tagService.List(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (th *TagHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := th.tagService.Create(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (th *TagHandler) Update(c *gin.Context) {
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
	row, err := th.tagService.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, row)
}

func (th *TagHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := th.tagService.Delete(c.Request.Context(), userID, id); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
