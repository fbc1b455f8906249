package models

// CartStatusAdded is the only status a cart entry ever carries. Entries are
// an append-only log of add-to-cart actions: they are never updated, removed
// or cleared by checkout, and a repeated add shows up as its own line.
const CartStatusAdded = "ADDED"

type CartEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"userId"`
	ProductID uint   `gorm:"index;not null" json:"productId"`
	Status    string `gorm:"size:250;not null" json:"status"`
}
