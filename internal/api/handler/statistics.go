package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

type StatisticsHandler struct {
	statsSvc *service.StatsService
}

func NewStatisticsHandler(statsSvc *service.StatsService) *StatisticsHandler {
	return &StatisticsHandler{statsSvc: statsSvc}
}

// Summary GET /api/v1/statistics?days=30
func (h *StatisticsHandler) Summary(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	summary, err := h.statsSvc.Summary(middleware.GetCompany(c).ID, days)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, summary)
}
