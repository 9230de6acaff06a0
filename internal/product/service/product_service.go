// internal/product/service/product_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/product"
	"github.com/slmn-lf/east-store-sub000/internal/product/repository"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

const (
	cacheKeyAll  = "products:all"
	cacheTTL     = 10 * time.Minute
	slugMaxTries = 50
)

func cacheKeySlug(slug string) string {
	return fmt.Sprintf("products:slug:%s", slug)
}

// Kontrak service katalog produk.
type ProductService interface {
	List() ([]product.Product, error)
	GetBySlug(slug string) (*product.Product, error)
	Create(req product.CreateProductRequest) (*product.Product, error)
	Update(id uint, req product.UpdateProductRequest) (*product.Product, error)
	Delete(id uint) error

	SizeCharts(productID uint) ([]product.SizeChart, error)
	AddSizeChart(productID uint, req product.SizeChartRequest) (*product.SizeChart, error)
	RemoveSizeChart(id uint) error
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

// List mengembalikan semua produk, dengan strategi read-through cache:
// cek Redis dulu, kalau kosong ambil dari DB lalu simpan 10 menit.
func (s *productService) List() ([]product.Product, error) {
	val, err := s.rdb.Get(ctx, cacheKeyAll).Result()
	if err == nil {
		var products []product.Product
		if json.Unmarshal([]byte(val), &products) == nil {
			return products, nil
		}
	}

	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(products); err == nil {
		s.rdb.Set(ctx, cacheKeyAll, jsonData, cacheTTL)
	}
	return products, nil
}

func (s *productService) GetBySlug(slug string) (*product.Product, error) {
	key := cacheKeySlug(slug)

	val, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var p product.Product
		if json.Unmarshal([]byte(val), &p) == nil {
			return &p, nil
		}
	}

	p, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(p); err == nil {
		s.rdb.Set(ctx, key, jsonData, cacheTTL)
	}
	return p, nil
}

func (s *productService) Create(req product.CreateProductRequest) (*product.Product, error) {
	slug, err := s.uniqueSlug(product.Slugify(req.Name))
	if err != nil {
		return nil, err
	}

	newProduct := &product.Product{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	}

	saved, err := s.repo.Save(newProduct)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan produk: %w", err)
	}

	s.invalidate(saved.Slug)
	return saved, nil
}

func (s *productService) Update(id uint, req product.UpdateProductRequest) (*product.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	oldSlug := p.Slug
	p.Name = req.Name
	p.Description = req.Description
	p.PriceCents = req.PriceCents
	p.ImageURL = req.ImageURL
	// slug stabil setelah dibuat agar URL storefront tidak putus

	updated, err := s.repo.Update(p)
	if err != nil {
		return nil, fmt.Errorf("gagal memperbarui produk: %w", err)
	}

	s.invalidate(oldSlug)
	return updated, nil
}

func (s *productService) Delete(id uint) error {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(p.Slug)
	return nil
}

func (s *productService) SizeCharts(productID uint) ([]product.SizeChart, error) {
	if _, err := s.repo.FindByID(productID); err != nil {
		return nil, err
	}
	return s.repo.SizeChartsByProductID(productID)
}

func (s *productService) AddSizeChart(productID uint, req product.SizeChartRequest) (*product.SizeChart, error) {
	if _, err := s.repo.FindByID(productID); err != nil {
		return nil, err
	}
	return s.repo.SaveSizeChart(&product.SizeChart{
		ProductID: productID,
		Label:     req.Label,
		ChestCm:   req.ChestCm,
		LengthCm:  req.LengthCm,
		SleeveCm:  req.SleeveCm,
	})
}

func (s *productService) RemoveSizeChart(id uint) error {
	return s.repo.DeleteSizeChart(id)
}

// uniqueSlug menambahkan akhiran -2, -3, ... sampai slug belum terpakai.
func (s *productService) uniqueSlug(base string) (string, error) {
	if base == "" {
		base = "produk"
	}
	slug := base
	for i := 2; i <= slugMaxTries; i++ {
		exists, err := s.repo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("gagal membuat slug unik untuk %q", base)
}

func (s *productService) invalidate(slug string) {
	if err := s.rdb.Del(ctx, cacheKeyAll, cacheKeySlug(slug)).Err(); err != nil {
		log.Printf("PERINGATAN: gagal invalidasi cache produk: %v", err)
	}
}
