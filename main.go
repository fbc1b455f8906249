package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/controllers"
	"github.com/jmuiruri/duka-api/initializers"
	"github.com/jmuiruri/duka-api/middlewares"
	"github.com/jmuiruri/duka-api/payments"
	"github.com/jmuiruri/duka-api/repositories"
	"github.com/jmuiruri/duka-api/routes"
	"github.com/jmuiruri/duka-api/services"
)

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Database migration failed: ", err)
	}
	if err := initializers.SeedCatalog(db); err != nil {
		log.Fatal("Catalog seeding failed: ", err)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AppDomain},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.ResolveIdentity(cfg.SessionSecret))

	users := repositories.NewUserRepo(db)
	products := repositories.NewProductRepo(db)
	carts := repositories.NewCartRepo(db)

	authSvc := services.NewAuthService(users)
	catalogSvc := services.NewCatalogService(products, cfg.ImageDir)
	cartSvc := services.NewCartService(carts, products)
	gateway := payments.NewClient(cfg.PaymentAPIKey, cfg.AppDomain, cfg.PaymentBaseURL)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	routes.CatalogRoutes(server, controllers.NewCatalogController(catalogSvc))
	routes.AuthRoutes(server, controllers.NewAuthController(authSvc, cfg.SessionSecret, sessionTTL))
	routes.CartRoutes(server, controllers.NewCartController(cartSvc))
	routes.PaymentRoutes(server, controllers.NewPaymentController(gateway))

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
