package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func GetTemplatesRouteHandler(c *gin.Context) {
	controllers.GetTemplates(c)
}

func ApplyTemplateRouteHandler(c *gin.Context) {
	controllers.ApplyTemplate(c)
}

func ShareHabitRouteHandler(c *gin.Context) {
	controllers.ShareHabit(c)
}

func ShareTaskRouteHandler(c *gin.Context) {
	controllers.ShareTask(c)
}

func GetSharedItemsRouteHandler(c *gin.Context) {
	controllers.GetSharedItems(c)
}

func RemoveCollaboratorRouteHandler(c *gin.Context) {
	controllers.RemoveCollaborator(c)
}

func ExportDataRouteHandler(c *gin.Context) {
	controllers.ExportData(c)
}

func ImportDataRouteHandler(c *gin.Context) {
	controllers.ImportData(c)
}

func GetCombinedStatsRouteHandler(c *gin.Context) {
	controllers.GetCombinedStats(c)
}

func HealthCheckRouteHandler(c *gin.Context) {
	controllers.HealthCheck(c)
}
