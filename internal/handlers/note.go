package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calebwray/ideawell-backend/internal/services"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (nh *NoteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := nh.noteService.List(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (nh *NoteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Title      string     `json:"title"`
		Content    string     `json:"content"`
		NoteType   string     `json:"note_type"`
		PlatformID *uuid.UUID `json:"platform_id"`
		IdeaID     *uuid.UUID `json:"idea_id"`
		EntryDate  *time.Time `json:"entry_date"`
		Mood       string     `json:"mood"`
		Color      string     `json:"color"`
		Pinned     bool       `json:"pinned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	note := types.SystemNote{
		Title:      req.Title,
		Content:    req.Content,
		NoteType:   req.NoteType,
		PlatformID: req.PlatformID,
		IdeaID:     req.IdeaID,
		EntryDate:  req.EntryDate,
		Mood:       req.Mood,
		Color:      req.Color,
		Pinned:     req.Pinned,
	}
	row, err := nh.noteService.Create(c.Request.Context(), userID, &note)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (nh *NoteHandler) Update(c *gin.Context) {
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
	row, err := nh.noteService.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, row)
}

func (nh *NoteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := nh.noteService.Delete(c.Request.Context(), userID, id); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
