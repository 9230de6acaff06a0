// internal/product/repository/product_repository_test.go
package repository_test

import (
	"fmt"
	"testing"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/product"
	"github.com/slmn-lf/east-store-sub000/internal/product/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(&product.Product{}, &product.SizeChart{}))
	return db
}

func TestProductRepository_SaveAndFindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	saved, err := repo.Save(&product.Product{
		Name:       "Kaos East Wave",
		Slug:       "kaos-east-wave",
		PriceCents: money.FromMajor(125000),
	})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindBySlug("kaos-east-wave")
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, money.FromMajor(125000), found.PriceCents)

	_, err = repo.FindBySlug("tidak-ada")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestProductRepository_SlugExists(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	_, err := repo.Save(&product.Product{Name: "Kaos", Slug: "kaos", PriceCents: money.FromMajor(100000)})
	assert.NoError(t, err)

	exists, err := repo.SlugExists("kaos")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists("kaos-2")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestProductRepository_Delete_CascadesSizeCharts(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	saved, err := repo.Save(&product.Product{Name: "Kaos", Slug: "kaos", PriceCents: money.FromMajor(100000)})
	assert.NoError(t, err)

	_, err = repo.SaveSizeChart(&product.SizeChart{ProductID: saved.ID, Label: "L", ChestCm: 52})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(saved.ID))

	charts, err := repo.SizeChartsByProductID(saved.ID)
	assert.NoError(t, err)
	assert.Empty(t, charts)

	_, err = repo.FindByID(saved.ID)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	assert.ErrorIs(t, repo.Delete(999), product.ErrNotFound)
}
