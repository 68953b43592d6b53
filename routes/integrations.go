package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func GetNearbyRouteHandler(c *gin.Context) {
	controllers.GetNearby(c)
}

func SetHomeLocationRouteHandler(c *gin.Context) {
	controllers.SetHomeLocation(c)
}

func GenerateOTPRouteHandler(c *gin.Context) {
	controllers.GenerateOTP(c)
}

func Enable2FARouteHandler(c *gin.Context) {
	controllers.Enable2FA(c)
}

func Disable2FARouteHandler(c *gin.Context) {
	controllers.Disable2FA(c)
}

func VerifyOTPRouteHandler(c *gin.Context) {
	controllers.VerifyOTP(c)
}

func GetCalendarAuthURLRouteHandler(c *gin.Context) {
	controllers.GetCalendarAuthURL(c)
}

func CalendarCallbackRouteHandler(c *gin.Context) {
	controllers.CalendarCallback(c)
}

func SyncCalendarRouteHandler(c *gin.Context) {
	controllers.SyncCalendar(c)
}

func DisconnectCalendarRouteHandler(c *gin.Context) {
	controllers.DisconnectCalendar(c)
}

func GetSuggestionsRouteHandler(c *gin.Context) {
	controllers.GetSuggestions(c)
}

func ChatRouteHandler(c *gin.Context) {
	controllers.Chat(c)
}
