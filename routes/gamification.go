package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func GetGamificationStatsRouteHandler(c *gin.Context) {
	controllers.GetGamificationStats(c)
}

func AwardXPRouteHandler(c *gin.Context) {
	controllers.AwardXP(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

func UpdateLeaderboardScoreRouteHandler(c *gin.Context) {
	controllers.UpdateLeaderboardScore(c)
}
