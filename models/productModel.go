package models

type Product struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:250;not null" json:"name"`
	Category string `gorm:"size:250;not null" json:"category"`
	Provider string `gorm:"size:250;not null" json:"provider"`
	Image    string `gorm:"size:500" json:"image"`
}

// Stock carries the price and remaining count for a product. A product
// without a stock row is listed without a price.
type Stock struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"productId"`
	Price     uint16 `gorm:"not null" json:"price"`
	Count     uint16 `gorm:"not null" json:"count"`
}
