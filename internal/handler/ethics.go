package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"congresstrack/internal/ethics"
)

type EthicsHandler struct {
	Service *ethics.Service
	Logger  *zap.Logger
}

func (h *EthicsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/ethics")
	group.GET("/summary", h.summary)
}

// @Summary Ethics summary report
// @Tags ethics
// @Success 200 {object} ethics.Summary
// @Router /api/v1/ethics/summary [get]
func (h *EthicsHandler) summary(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "ethics service unavailable", nil)
		return
	}
	report, err := h.Service.BuildSummary(c.Request.Context(), time.Now().UTC())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("ethics summary failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, "failed to build ethics summary", nil)
		return
	}
	Ok(c, report, nil)
}
