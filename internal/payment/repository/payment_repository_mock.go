// internal/payment/repository/payment_repository_mock.go
package repository

import (
	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/payment"

	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository adalah mock untuk PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Save(p *payment.Payment) (*payment.Payment, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByID(id uint) (*payment.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByPreorderID(preorderID uint) (*payment.Payment, error) {
	args := m.Called(preorderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(filter payment.Filter) ([]payment.Payment, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePaidAmount(id uint, paid money.Cents) (*payment.Payment, error) {
	args := m.Called(id, paid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
