package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmuiruri/duka-api/models"
	"github.com/jmuiruri/duka-api/repositories"
	"github.com/samber/lo"
)

// ProductListing is one catalog row: a product with its stock row when one
// exists. Stock is nil for products that are out of the purchasable listing.
type ProductListing struct {
	Product models.Product `json:"product"`
	Stock   *models.Stock  `json:"stock,omitempty"`
}

type CatalogService struct {
	products *repositories.ProductRepo
	imageDir string
}

func NewCatalogService(products *repositories.ProductRepo, imageDir string) *CatalogService {
	return &CatalogService{products: products, imageDir: imageDir}
}

// ListProducts returns every product in insertion order, left-joined in code
// with its stock row.
func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductListing, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	ids := lo.Map(products, func(p models.Product, _ int) uint { return p.ID })
	stocks, err := s.products.StocksFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading stock: %w", err)
	}
	stockByProduct := lo.KeyBy(stocks, func(st models.Stock) uint { return st.ProductID })

	return lo.Map(products, func(p models.Product, _ int) ProductListing {
		listing := ProductListing{Product: p}
		if st, ok := stockByProduct[p.ID]; ok {
			listing.Stock = &st
		}
		return listing
	}), nil
}

// GetImage returns the bytes of a named image inside the configured image
// directory. Names with path separators or dot-dot segments never reach the
// filesystem, and errors carry only the bare file name.
func (s *CatalogService) GetImage(fileName string) ([]byte, error) {
	if !validImageName(fileName) {
		return nil, ErrImageNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.imageDir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("reading image %s: %w", fileName, errors.Unwrap(err))
	}
	return data, nil
}

func validImageName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name == filepath.Base(name)
}
