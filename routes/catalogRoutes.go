package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/controllers"
)

func CatalogRoutes(server *gin.Engine, catalog *controllers.CatalogController) {
	server.GET("/", catalog.Home)
	server.GET("/images/:fileName", catalog.Image)
}
