// internal/product/service/product_service_test.go
package service

import (
	"encoding/json"
	"testing"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/product"
	"github.com/slmn-lf/east-store-sub000/internal/product/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest(t *testing.T) (ProductService, *repository.MockProductRepository, *miniredis.Miniredis) {
	mockRepo := new(repository.MockProductRepository)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewProductService(mockRepo, rdb), mockRepo, mr
}

func TestProductService_List_CacheHit(t *testing.T) {
	svc, mockRepo, mr := setupTest(t)
	defer mr.Close()

	expected := []product.Product{
		{ID: 1, Name: "Kaos Polos", Slug: "kaos-polos", PriceCents: money.FromMajor(125000)},
	}
	jsonData, _ := json.Marshal(expected)
	mr.Set(cacheKeyAll, string(jsonData))

	result, err := svc.List()

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "kaos-polos", result[0].Slug)
	// Repository tidak boleh tersentuh saat cache hit
	mockRepo.AssertNotCalled(t, "FindAll")
}

func TestProductService_List_CacheMiss(t *testing.T) {
	svc, mockRepo, mr := setupTest(t)
	defer mr.Close()

	expected := []product.Product{
		{ID: 1, Name: "Kaos Polos", Slug: "kaos-polos", PriceCents: money.FromMajor(125000)},
	}
	mockRepo.On("FindAll").Return(expected, nil).Once()

	result, err := svc.List()

	assert.NoError(t, err)
	assert.Len(t, result, 1)

	// Hasil DB harus tersimpan di cache setelah miss
	val, _ := mr.Get(cacheKeyAll)
	assert.True(t, len(val) > 0, "Products must be cached after cache miss")

	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_GeneratesUniqueSlug(t *testing.T) {
	svc, mockRepo, mr := setupTest(t)
	defer mr.Close()

	// slug dasar sudah terpakai, harus jatuh ke 'kaos-polos-2'
	mockRepo.On("SlugExists", "kaos-polos").Return(true, nil).Once()
	mockRepo.On("SlugExists", "kaos-polos-2").Return(false, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*product.Product")).
		Return(&product.Product{ID: 2, Name: "Kaos Polos", Slug: "kaos-polos-2"}, nil).Once()

	created, err := svc.Create(product.CreateProductRequest{
		Name:       "Kaos Polos",
		PriceCents: money.FromMajor(125000),
	})

	assert.NoError(t, err)
	assert.Equal(t, "kaos-polos-2", created.Slug)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update_InvalidatesCache(t *testing.T) {
	svc, mockRepo, mr := setupTest(t)
	defer mr.Close()

	existing := &product.Product{ID: 1, Name: "Kaos", Slug: "kaos", PriceCents: money.FromMajor(100000)}
	mr.Set(cacheKeyAll, "stale")
	mr.Set(cacheKeySlug("kaos"), "stale")

	mockRepo.On("FindByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*product.Product")).
		Return(existing, nil).Once()

	_, err := svc.Update(1, product.UpdateProductRequest{
		Name:       "Kaos Premium",
		PriceCents: money.FromMajor(150000),
	})

	assert.NoError(t, err)
	assert.False(t, mr.Exists(cacheKeyAll), "cache list harus terhapus setelah update")
	assert.False(t, mr.Exists(cacheKeySlug("kaos")), "cache detail harus terhapus setelah update")
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetBySlug_NotFound(t *testing.T) {
	svc, mockRepo, mr := setupTest(t)
	defer mr.Close()

	mockRepo.On("FindBySlug", "tidak-ada").Return(nil, product.ErrNotFound).Once()

	_, err := svc.GetBySlug("tidak-ada")

	assert.ErrorIs(t, err, product.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
