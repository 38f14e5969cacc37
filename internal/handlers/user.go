package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/requestdata"
	"github.com/calebwray/ideawell-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("no session"))
		return
	}
	user, err := uh.userService.GetMe(c.Request.Context(), rd.UserID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	RespondOK(c, user)
}

func (uh *UserHandler) UpdatePassword(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("no session"))
		return
	}
	var req struct {
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Password != req.PasswordConfirm {
		RespondError(c, http.StatusBadRequest, "password_mismatch", fmt.Errorf("passwords do not match"))
		return
	}
	if err := uh.userService.UpdatePassword(c.Request.Context(), rd.UserID, req.Password); err != nil {
		RespondError(c, http.StatusBadRequest, "password_update_failed", err)
		return
	}
	RespondOK(c, gin.H{"message": "password updated"})
}
