package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/controllers"
)

func PaymentRoutes(server *gin.Engine, payment *controllers.PaymentController) {
	server.POST("/payment/:price", payment.Pay)
}
