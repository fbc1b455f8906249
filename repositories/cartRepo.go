package repositories

import (
	"context"

	"github.com/jmuiruri/duka-api/models"
	"gorm.io/gorm"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

// Append records one add-to-cart action. Entries are never updated or
// deleted afterwards.
func (r *CartRepo) Append(ctx context.Context, entry *models.CartEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ByUser returns only the calling user's entries, in insertion order.
func (r *CartRepo) ByUser(ctx context.Context, userID uint) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&entries).Error
	return entries, err
}
