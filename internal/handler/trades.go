package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"congresstrack/internal/repository"
)

type TradeHandler struct {
	Repo repository.Repository
}

func (h *TradeHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/trades")
	group.GET("", h.list)
}

// @Summary List disclosed trades
// @Tags trades
// @Param politician_id query string false "filter by politician"
// @Param ticker query string false "filter by ticker"
// @Param chamber query string false "House or Senate"
// @Router /api/v1/trades [get]
func (h *TradeHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListTradesParams{
		Limit:        intQuery(c, "limit", 50),
		Offset:       intQuery(c, "offset", 0),
		PoliticianID: strQueryPtr(c, "politician_id"),
		Ticker:       strQueryPtr(c, "ticker"),
		Chamber:      strQueryPtr(c, "chamber"),
		OrderBy:      c.DefaultQuery("order_by", "transaction_date"),
		Asc:          boolPtr(false),
	}
	items, err := h.Repo.ListTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}
