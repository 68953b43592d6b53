package routes

import (
	"momentum/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRouteHandler(c *gin.Context) {
	controllers.Register(c)
}

func LoginRouteHandler(c *gin.Context) {
	controllers.Login(c)
}

func GoogleLoginRouteHandler(c *gin.Context) {
	controllers.GoogleLogin(c)
}

func GetMeRouteHandler(c *gin.Context) {
	controllers.GetMe(c)
}

func UpdateProfileRouteHandler(c *gin.Context) {
	controllers.UpdateProfile(c)
}
