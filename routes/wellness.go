package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func LogMoodRouteHandler(c *gin.Context) {
	controllers.LogMood(c)
}

func GetMoodHistoryRouteHandler(c *gin.Context) {
	controllers.GetMoodHistory(c)
}

func GetMoodInsightsRouteHandler(c *gin.Context) {
	controllers.GetMoodInsights(c)
}

func GetWeeklyReportRouteHandler(c *gin.Context) {
	controllers.GetWeeklyReport(c)
}

func GetMonthlyReportRouteHandler(c *gin.Context) {
	controllers.GetMonthlyReport(c)
}
