package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	server.GET("/register", auth.ShowRegisterForm)
	server.POST("/register", auth.Register)
	server.GET("/login", auth.ShowLoginForm)
	server.POST("/login", auth.Login)
	server.GET("/logout", auth.Logout)
}
