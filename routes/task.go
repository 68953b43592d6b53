package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func GetTasksRouteHandler(c *gin.Context) {
	controllers.GetTasks(c)
}

func CreateTaskRouteHandler(c *gin.Context) {
	controllers.CreateTask(c)
}

func UpdateTaskRouteHandler(c *gin.Context) {
	controllers.UpdateTask(c)
}

func DeleteTaskRouteHandler(c *gin.Context) {
	controllers.DeleteTask(c)
}

func GetTaskStatsRouteHandler(c *gin.Context) {
	controllers.GetTaskStats(c)
}
