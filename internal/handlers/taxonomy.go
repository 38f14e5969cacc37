package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type TaxonomyHandler struct {
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

func respondTaxonomyError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSystemRowImmutable) {
		RespondError(c, http.StatusForbidden, "system_row", err)
		return
	}
	respondRepoError(c, err)
}

func (th *TaxonomyHandler) ListContentTypes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := th.taxonomyService.ListContentTypes(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (th *TaxonomyHandler) CreateContentType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := th.taxonomyService.CreateContentType(c.Request.Context(), userID, req.Name)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (th *TaxonomyHandler) UpdateContentType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := th.taxonomyService.UpdateContentType(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, row)
}

func (th *TaxonomyHandler) DeleteContentType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := th.taxonomyService.DeleteContentType(c.Request.Context(), userID, id); err != nil {
		respondTaxonomyError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (th *TaxonomyHandler) ListPlatforms(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rows, err := th.taxonomyService.ListPlatforms(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (th *TaxonomyHandler) CreatePlatform(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := th.taxonomyService.CreatePlatform(c.Request.Context(), userID, req.Name)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (th *TaxonomyHandler) UpdatePlatform(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := th.taxonomyService.UpdatePlatform(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, row)
}

func (th *TaxonomyHandler) DeletePlatform(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := th.taxonomyService.DeletePlatform(c.Request.Context(), userID, id); err != nil {
		respondTaxonomyError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
