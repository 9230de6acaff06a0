// internal/preorder/repository/preorder_repository_mock.go
package repository

import (
	"github.com/slmn-lf/east-store-sub000/internal/preorder"

	"github.com/stretchr/testify/mock"
)

// MockPreorderRepository adalah mock untuk PreorderRepository.
type MockPreorderRepository struct {
	mock.Mock
}

func (m *MockPreorderRepository) Save(po *preorder.Preorder) (*preorder.Preorder, error) {
	args := m.Called(po)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) FindAll() ([]preorder.Preorder, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) FindByID(id uint) (*preorder.Preorder, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) Confirm(id uint) (*preorder.Preorder, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
