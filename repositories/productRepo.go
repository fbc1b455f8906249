package repositories

import (
	"context"
	"errors"

	"github.com/jmuiruri/duka-api/models"
	"gorm.io/gorm"
)

// ProductRepo reads the catalog. Products and their stock rows are reference
// data; there is no write path here. Joins between products and stock happen
// in the services, not through relationship loading.
type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	return products, err
}

func (r *ProductRepo) ByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *ProductRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Select("id").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProductRepo) StocksFor(ctx context.Context, productIDs []uint) ([]models.Stock, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var stocks []models.Stock
	err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&stocks).Error
	return stocks, err
}
