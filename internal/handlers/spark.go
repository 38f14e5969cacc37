package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/services"
)

type SparkHandler struct {
	sparkService services.SparkService
}

func NewSparkHandler(sparkService services.SparkService) *SparkHandler {
	return &SparkHandler{sparkService: sparkService}
}

// Generate proxies one brainstorming request. Rate-limit and quota failures
// keep their distinct status codes; any other upstream failure is a 502.
func (sh *SparkHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.SparkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	suggestions, err := sh.sparkService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSparkInvalidType):
			RespondError(c, http.StatusBadRequest, "invalid_spark_type", err)
		case errors.Is(err, services.ErrSparkRateLimited):
			RespondError(c, http.StatusTooManyRequests, "rate_limited", err)
		case errors.Is(err, services.ErrSparkQuotaExhausted):
			RespondError(c, http.StatusPaymentRequired, "quota_exhausted", err)
		default:
			RespondError(c, http.StatusBadGateway, "spark_failed", err)
		}
		return
	}
	RespondOK(c, gin.H{"suggestions": suggestions})
}
