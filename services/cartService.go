package services

import (
	"context"
	"fmt"

	"github.com/jmuiruri/duka-api/models"
	"github.com/jmuiruri/duka-api/repositories"
	"github.com/samber/lo"
)

// CartLine is one entry of the cart view: the stored entry joined with its
// product and, when the product is stocked, its price/count row.
type CartLine struct {
	Entry   models.CartEntry `json:"entry"`
	Product models.Product   `json:"product"`
	Stock   *models.Stock    `json:"stock,omitempty"`
}

type CartService struct {
	carts    *repositories.CartRepo
	products *repositories.ProductRepo
}

func NewCartService(carts *repositories.CartRepo, products *repositories.ProductRepo) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddToCart appends one entry for the user. The product must exist in the
// catalog; stock is not required and is never checked or reserved here.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint) (*models.CartEntry, error) {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("checking product: %w", err)
	}
	if !exists {
		return nil, ErrUnknownProduct
	}

	entry := &models.CartEntry{
		UserID:    userID,
		ProductID: productID,
		Status:    models.CartStatusAdded,
	}
	if err := s.carts.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("appending cart entry: %w", err)
	}
	return entry, nil
}

// ViewCart returns the calling user's entries only, in the order they were
// added, each joined with its product and optional stock row.
func (s *CartService) ViewCart(ctx context.Context, userID uint) ([]CartLine, error) {
	entries, err := s.carts.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	if len(entries) == 0 {
		return []CartLine{}, nil
	}

	productIDs := lo.Uniq(lo.Map(entries, func(e models.CartEntry, _ int) uint { return e.ProductID }))
	products, err := s.products.ByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	stocks, err := s.products.StocksFor(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("loading stock: %w", err)
	}

	productByID := lo.KeyBy(products, func(p models.Product) uint { return p.ID })
	stockByProduct := lo.KeyBy(stocks, func(st models.Stock) uint { return st.ProductID })

	lines := make([]CartLine, 0, len(entries))
	for _, entry := range entries {
		product, ok := productByID[entry.ProductID]
		if !ok {
			// Entry left behind by a product that vanished from the
			// catalog; nothing to display for it.
			continue
		}
		line := CartLine{Entry: entry, Product: product}
		if st, ok := stockByProduct[entry.ProductID]; ok {
			line.Stock = &st
		}
		lines = append(lines, line)
	}
	return lines, nil
}
