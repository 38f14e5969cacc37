package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type BootstrapHandler struct {
	bootstrapService services.BootstrapService
}

func NewBootstrapHandler(bootstrapService services.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{bootstrapService: bootstrapService}
}

func (bh *BootstrapHandler) Load(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	payload, err := bh.bootstrapService.Load(c.Request.Context(), userID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, payload)
}
