package handler

import (
	"time"

	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStatsHandler runs the concurrent stats fan-out. Any failing
// query fails the whole aggregate; there is no partial result.
func GetDashboardStatsHandler(c *gin.Context, dashboardService *usecase.DashboardService) {
	userID := middleware.CurrentUserID(c)

	start := time.Now()
	stats, err := dashboardService.GetStats(c.Request.Context(), userID)
	middleware.DashboardFanoutDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		utils.InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	utils.Success(c, stats)
}

func GetDashboardActivityHandler(c *gin.Context, dashboardService *usecase.DashboardService) {
	userID := middleware.CurrentUserID(c)

	activity, err := dashboardService.GetActivity(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch dashboard activity")
		return
	}

	utils.Success(c, activity)
}
