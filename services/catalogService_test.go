package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmuiruri/duka-api/models"
	"github.com/jmuiruri/duka-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_JoinsStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepo(db), t.TempDir())

	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Wireless Mouse", Category: "Electronics", Provider: "Logitech"}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 2, Name: "Canvas Tote Bag", Category: "Accessories", Provider: "Duka Home"}).Error)
	require.NoError(t, db.Create(&models.Stock{ProductID: 1, Price: 25, Count: 40}).Error)

	listings, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	require.NotNil(t, listings[0].Stock)
	assert.EqualValues(t, 25, listings[0].Stock.Price)
	assert.EqualValues(t, 40, listings[0].Stock.Count)
	assert.Nil(t, listings[1].Stock, "a product with no stock row is still listed")
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepo(db), t.TempDir())

	listings, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestGetImage_ReadsNamedFile(t *testing.T) {
	dir := t.TempDir()
	want := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mouse.jpg"), want, 0o644))

	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepo(db), dir)

	data, err := svc.GetImage("mouse.jpg")
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestGetImage_Missing(t *testing.T) {
	dir := t.TempDir()
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepo(db), dir)

	_, err := svc.GetImage("nonexistent.jpg")
	assert.ErrorIs(t, err, ErrImageNotFound)
	assert.NotContains(t, err.Error(), dir, "errors must not leak the image directory path")
}

func TestGetImage_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewProductRepo(db), dir)

	for _, name := range []string{
		"../secret.txt",
		"..",
		".",
		"",
		"a/b.jpg",
		`a\b.jpg`,
	} {
		_, err := svc.GetImage(name)
		assert.ErrorIs(t, err, ErrImageNotFound, "name %q must be rejected", name)
	}
}
