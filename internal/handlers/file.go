package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type FileHandler struct {
	fileService services.FileService
}

func NewFileHandler(fileService services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (fh *FileHandler) ListByIdea(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ideaID, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := fh.fileService.ListByIdea(c.Request.Context(), userID, ideaID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Upload accepts a multipart form with a single "file" part. Oversized files
// are rejected before any storage traffic.
func (fh *FileHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ideaID, ok := pathID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if header.Size > services.MaxFileSizeBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", services.ErrFileTooLarge)
		return
	}
	src, err := header.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	defer src.Close()

	row, err := fh.fileService.Upload(c.Request.Context(), userID, ideaID,
		header.Filename, header.Header.Get("Content-Type"), header.Size, src)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", err)
			return
		}
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (fh *FileHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	fileID, ok := pathID(c)
	if !ok {
		return
	}
	if err := fh.fileService.Delete(c.Request.Context(), userID, fileID); err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
