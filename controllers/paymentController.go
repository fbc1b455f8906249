package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/payments"
)

type PaymentController struct {
	gateway *payments.Client
}

func NewPaymentController(gateway *payments.Client) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// Pay creates a hosted checkout session for the price id in the path and
// redirects the browser to the provider. Gateway failures are logged and the
// message returned to the client as plain text.
func (p *PaymentController) Pay(ctx *gin.Context) {
	checkoutURL, err := p.gateway.CreateCheckoutSession(ctx.Request.Context(), ctx.Param("price"))
	if err != nil {
		log.Println("Checkout session error:", err)
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.Redirect(http.StatusSeeOther, checkoutURL)
}
