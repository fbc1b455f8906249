package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/controllers"
	"github.com/jmuiruri/duka-api/middlewares"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	basket := server.Group("/", middlewares.RequireAuth())
	{
		basket.GET("/basket/", cart.ViewBasket)
		basket.GET("/add_item/:productId", cart.AddItem)
		basket.POST("/add_item/:productId", cart.AddItem)
	}
}
