// internal/product/repository/product_repository_mock.go
package repository

import (
	"github.com/slmn-lf/east-store-sub000/internal/product"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository adalah mock untuk ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(p *product.Product) (*product.Product, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(p *product.Product) (*product.Product, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll() ([]product.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(id uint) (*product.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(slug string) (*product.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) SizeChartsByProductID(productID uint) ([]product.SizeChart, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.SizeChart), args.Error(1)
}

func (m *MockProductRepository) SaveSizeChart(sc *product.SizeChart) (*product.SizeChart, error) {
	args := m.Called(sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.SizeChart), args.Error(1)
}

func (m *MockProductRepository) DeleteSizeChart(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
