// internal/payment/service/payment_service_test.go
package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/messaging"
	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/payment"
	"github.com/slmn-lf/east-store-sub000/internal/payment/repository"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest(t *testing.T) (PaymentService, *repository.MockPaymentRepository, *messaging.MockPublisher) {
	mockRepo := new(repository.MockPaymentRepository)
	mockPublisher := new(messaging.MockPublisher)
	return NewPaymentService(mockRepo, mockPublisher), mockRepo, mockPublisher
}

func TestPaymentService_Apply_Success(t *testing.T) {
	svc, mockRepo, mockPublisher := setupTest(t)

	updated := &payment.Payment{
		ID:              1,
		PreorderID:      1,
		AmountCents:     money.FromMajor(250000),
		PaidAmountCents: money.FromMajor(100000),
		Status:          payment.StatusPending,
	}
	mockRepo.On("UpdatePaidAmount", uint(1), money.FromMajor(100000)).Return(updated, nil).Once()
	mockPublisher.On("Publish", messaging.KeyPaymentUpdated, mock.AnythingOfType("[]uint8")).
		Return(nil).Once()

	result, err := svc.Apply(1, money.FromMajor(100000))

	assert.NoError(t, err)
	assert.Equal(t, money.FromMajor(100000), result.PaidAmountCents)
	assert.Equal(t, money.FromMajor(150000), result.RemainingCents())

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestPaymentService_Apply_OutOfRange(t *testing.T) {
	svc, mockRepo, mockPublisher := setupTest(t)

	rangeErr := &payment.AmountRangeError{TotalCents: money.FromMajor(250000)}
	mockRepo.On("UpdatePaidAmount", uint(1), money.FromMajor(300000)).Return(nil, rangeErr).Once()

	_, err := svc.Apply(1, money.FromMajor(300000))

	var target *payment.AmountRangeError
	assert.ErrorAs(t, err, &target)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPaymentService_List_ComputesSummary(t *testing.T) {
	svc, mockRepo, _ := setupTest(t)

	working := []payment.Payment{
		{ID: 1, AmountCents: money.FromMajor(250000), PaidAmountCents: money.FromMajor(100000)},
		{ID: 2, AmountCents: money.FromMajor(100000), PaidAmountCents: money.FromMajor(100000)},
	}
	mockRepo.On("List", payment.Filter{}).Return(working, nil).Once()

	payments, summary, err := svc.List(payment.Filter{})

	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, 2, summary.TotalPemesan)
	assert.Equal(t, 1, summary.TotalBelumLunas)
	assert.Equal(t, money.FromMajor(200000), summary.TotalTerbayarCents)
	assert.Equal(t, money.FromMajor(150000), summary.TotalSisaCents)
}

// Skenario lengkap: preorder 125.000 x 2, bayar parsial 10.000,
// lalu pelunasan 250.000.
func TestPaymentService_PartialThenFullSettlement(t *testing.T) {
	svc, mockRepo, mockPublisher := setupTest(t)
	mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	pay := &payment.Payment{
		ID:          1,
		PreorderID:  1,
		AmountCents: money.Cents(25000000), // 250.000 mayor
		Status:      payment.StatusPending,
	}

	// bayar parsial 10.000 mayor
	partial := *pay
	partial.PaidAmountCents = money.Cents(1000000)
	mockRepo.On("UpdatePaidAmount", uint(1), money.Cents(1000000)).Return(&partial, nil).Once()

	result, err := svc.Apply(1, money.FromMajor(10000))
	assert.NoError(t, err)
	assert.Equal(t, money.Cents(1000000), result.PaidAmountCents)
	assert.Equal(t, money.Cents(15000000), result.RemainingCents())
	assert.Equal(t, 1, payment.Summarize([]payment.Payment{*result}).TotalBelumLunas)

	// pelunasan penuh 250.000 mayor
	full := *pay
	full.PaidAmountCents = money.Cents(25000000)
	mockRepo.On("UpdatePaidAmount", uint(1), money.Cents(25000000)).Return(&full, nil).Once()

	result, err = svc.Apply(1, money.FromMajor(250000))
	assert.NoError(t, err)
	assert.Equal(t, money.Cents(0), result.RemainingCents())
	assert.Equal(t, 0, payment.Summarize([]payment.Payment{*result}).TotalBelumLunas)
}

func TestPaymentService_ExportCSV(t *testing.T) {
	svc, mockRepo, _ := setupTest(t)

	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	working := []payment.Payment{
		{
			ID:          1,
			PreorderID:  1,
			Preorder:    preorder.Preorder{CustomerName: "Budi Santoso"},
			Method:      payment.MethodPreorder,
			AmountCents: money.FromMajor(250000),
			Status:      payment.StatusPending,
			CreatedAt:   now,
		},
	}
	mockRepo.On("List", payment.Filter{Search: "Budi"}).Return(working, nil).Times(2)

	var first, second bytes.Buffer
	name1, err := svc.ExportCSV(&first, payment.Filter{Search: "Budi"}, now)
	assert.NoError(t, err)
	name2, err := svc.ExportCSV(&second, payment.Filter{Search: "Budi"}, now)
	assert.NoError(t, err)

	assert.Equal(t, "payments_2026-08-28.csv", name1)
	assert.Equal(t, name1, name2)
	// determinisme: dua invokasi identik byte demi byte
	assert.Equal(t, first.Bytes(), second.Bytes())
}
