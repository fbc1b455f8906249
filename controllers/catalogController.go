package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/middlewares"
	"github.com/jmuiruri/duka-api/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Home serves the product listing, personalized when a session is present.
func (c *CatalogController) Home(ctx *gin.Context) {
	listings, err := c.catalog.ListProducts(ctx.Request.Context())
	if err != nil {
		log.Println("Catalog error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	principal, loggedIn := middlewares.CurrentUser(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products": listings,
		"loggedIn": loggedIn,
		"name":     principal.Name,
	})
}

// Image streams one catalog image as image/jpeg.
func (c *CatalogController) Image(ctx *gin.Context) {
	data, err := c.catalog.GetImage(ctx.Param("fileName"))
	if errors.Is(err, services.ErrImageNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgImageNotFound)
		return
	}
	if err != nil {
		log.Println("Image error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.Data(http.StatusOK, "image/jpeg", data)
}
