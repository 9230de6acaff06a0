// internal/product/repository/product_repository.go
package repository

import (
	"errors"

	"github.com/slmn-lf/east-store-sub000/internal/product"

	"gorm.io/gorm"
)

// Kontrak repository untuk katalog produk + size chart.
type ProductRepository interface {
	Save(p *product.Product) (*product.Product, error)
	Update(p *product.Product) (*product.Product, error)
	FindAll() ([]product.Product, error)
	FindByID(id uint) (*product.Product, error)
	FindBySlug(slug string) (*product.Product, error)
	SlugExists(slug string) (bool, error)
	Delete(id uint) error

	SizeChartsByProductID(productID uint) ([]product.SizeChart, error)
	SaveSizeChart(sc *product.SizeChart) (*product.SizeChart, error)
	DeleteSizeChart(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Save(p *product.Product) (*product.Product, error) {
	if err := r.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(p *product.Product) (*product.Product, error) {
	if err := r.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) FindAll() ([]product.Product, error) {
	var products []product.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(id uint) (*product.Product, error) {
	var p product.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) FindBySlug(slug string) (*product.Product, error) {
	var p product.Product
	if err := r.db.First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&product.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Delete(id uint) error {
	// size chart milik produk ikut terhapus
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&product.SizeChart{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&product.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return product.ErrNotFound
		}
		return nil
	})
}

func (r *productRepository) SizeChartsByProductID(productID uint) ([]product.SizeChart, error) {
	var charts []product.SizeChart
	if err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&charts).Error; err != nil {
		return nil, err
	}
	return charts, nil
}

func (r *productRepository) SaveSizeChart(sc *product.SizeChart) (*product.SizeChart, error) {
	if err := r.db.Create(sc).Error; err != nil {
		return nil, err
	}
	return sc, nil
}

func (r *productRepository) DeleteSizeChart(id uint) error {
	res := r.db.Delete(&product.SizeChart{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return product.ErrNotFound
	}
	return nil
}
