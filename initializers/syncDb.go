package initializers

import (
	"log"

	"github.com/jmuiruri/duka-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Stock{}, &models.CartEntry{}); err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}

// SeedCatalog loads the starter catalog into an empty database so a fresh
// install serves a browsable listing. Products and stock are reference data
// with no write path beyond this.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Wireless Mouse", Category: "Electronics", Provider: "Logitech", Image: "mouse.jpg"},
		{Name: "Mechanical Keyboard", Category: "Electronics", Provider: "Keychron", Image: "keyboard.jpg"},
		{Name: "Ceramic Mug", Category: "Kitchen", Provider: "Duka Home", Image: "mug.jpg"},
		{Name: "Canvas Tote Bag", Category: "Accessories", Provider: "Duka Home", Image: "tote.jpg"},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	// The tote bag ships without a stock row: the listing shows it without
	// a price, which the storefront treats as "not purchasable".
	stocks := []models.Stock{
		{ProductID: products[0].ID, Price: 25, Count: 40},
		{ProductID: products[1].ID, Price: 90, Count: 12},
		{ProductID: products[2].ID, Price: 8, Count: 100},
	}
	if err := db.Create(&stocks).Error; err != nil {
		return err
	}

	log.Println("Seeded starter catalog.")
	return nil
}
