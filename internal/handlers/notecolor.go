package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type NoteColorHandler struct {
	noteColorService services.NoteColorService
}

func NewNoteColorHandler(noteColorService services.NoteColorService) *NoteColorHandler {
	return &NoteColorHandler{noteColorService: noteColorService}
}

func (nh *NoteColorHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := nh.noteColorService.List(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (nh *NoteColorHandler) Create(c *gin.Context) {
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
	row, err := nh.noteColorService.Create(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (nh *NoteColorHandler) Update(c *gin.Context) {
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
	if err := nh.noteColorService.Update(c.Request.Context(), userID, id, fields); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (nh *NoteColorHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := nh.noteColorService.Delete(c.Request.Context(), userID, id); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
