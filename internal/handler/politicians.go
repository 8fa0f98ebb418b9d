package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"congresstrack/internal/repository"
)

type PoliticianHandler struct {
	Repo repository.Repository
}

func (h *PoliticianHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/politicians")
	group.GET("", h.list)
	group.GET("/:id", h.get)
}

// @Summary List politicians
// @Tags politicians
// @Param chamber query string false "House or Senate"
// @Param order_by query string false "name or ytd_return (leaderboard)"
// @Router /api/v1/politicians [get]
func (h *PoliticianHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	orderBy := c.DefaultQuery("order_by", "name")
	asc := orderBy == "name"
	params := repository.ListPoliticiansParams{
		Limit:   intQuery(c, "limit", 50),
		Offset:  intQuery(c, "offset", 0),
		Chamber: strQueryPtr(c, "chamber"),
		Party:   strQueryPtr(c, "party"),
		OrderBy: orderBy,
		Asc:     boolPtr(asc),
	}
	items, err := h.Repo.ListPoliticians(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountPoliticians(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}

// @Summary Get a politician
// @Tags politicians
// @Router /api/v1/politicians/{id} [get]
func (h *PoliticianHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	item, err := h.Repo.GetPoliticianByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "politician not found", nil)
		return
	}
	Ok(c, item, nil)
}
