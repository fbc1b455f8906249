package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/middlewares"
	"github.com/jmuiruri/duka-api/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// AddItem appends one cart entry for the authenticated user and sends them
// to their basket. RequireAuth guarantees a principal is present.
func (c *CartController) AddItem(ctx *gin.Context) {
	principal, _ := middlewares.CurrentUser(ctx)

	productID, err := strconv.ParseUint(ctx.Param("productId"), 10, 32)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	if _, err := c.carts.AddToCart(ctx.Request.Context(), principal.UserID, uint(productID)); err != nil {
		if errors.Is(err, services.ErrUnknownProduct) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUnknownProduct)
			return
		}
		log.Println("Add to cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/basket/")
}

// ViewBasket renders the authenticated user's cart.
func (c *CartController) ViewBasket(ctx *gin.Context) {
	principal, _ := middlewares.CurrentUser(ctx)

	lines, err := c.carts.ViewCart(ctx.Request.Context(), principal.UserID)
	if err != nil {
		log.Println("Cart view error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":    lines,
		"name":     principal.Name,
		"loggedIn": true,
	})
}
