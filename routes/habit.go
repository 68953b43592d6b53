package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func GetHabitsRouteHandler(c *gin.Context) {
	controllers.GetHabits(c)
}

func CreateHabitRouteHandler(c *gin.Context) {
	controllers.CreateHabit(c)
}

func DeleteHabitRouteHandler(c *gin.Context) {
	controllers.DeleteHabit(c)
}

func CompleteHabitRouteHandler(c *gin.Context) {
	controllers.CompleteHabit(c)
}

func UncompleteHabitRouteHandler(c *gin.Context) {
	controllers.UncompleteHabit(c)
}

func GetHabitStatsRouteHandler(c *gin.Context) {
	controllers.GetHabitStats(c)
}
