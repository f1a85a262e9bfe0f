package api

import (
	"net/http"
	"time"

	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// @Summary Dashboard summary
// @Description Delivered-order totals and top products for one local day
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day to aggregate (YYYY-MM-DD, default today)"
// @Success 200 {object} resdto.DashboardSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var (
		summary *readmodel.DashboardSummaryRM
		err     error
	)
	if raw := c.Query("date"); raw != "" {
		date, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		summary, err = h.dashboardUseCase.Summary(c.Request.Context(), storeID, date)
	} else {
		summary, err = h.dashboardUseCase.TodaySummary(c.Request.Context(), storeID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardSummaryRM(summary))
}
