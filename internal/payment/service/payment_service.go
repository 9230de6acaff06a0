// internal/payment/service/payment_service.go
package service

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/messaging"
	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/payment"
	"github.com/slmn-lf/east-store-sub000/internal/payment/repository"
)

// Kontrak service ledger pembayaran.
type PaymentService interface {
	List(filter payment.Filter) ([]payment.Payment, payment.Summary, error)
	Apply(id uint, paid money.Cents) (*payment.Payment, error)
	ExportCSV(w io.Writer, filter payment.Filter, now time.Time) (string, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	publisher messaging.Publisher
}

func NewPaymentService(repo repository.PaymentRepository, publisher messaging.Publisher) PaymentService {
	return &paymentService{repo: repo, publisher: publisher}
}

// List mengembalikan working set beserta ringkasan yang dihitung ulang
// dari koleksi saat ini (tidak pernah di-cache).
func (s *paymentService) List(filter payment.Filter) ([]payment.Payment, payment.Summary, error) {
	payments, err := s.repo.List(filter)
	if err != nil {
		return nil, payment.Summary{}, err
	}
	return payments, payment.Summarize(payments), nil
}

// Apply mencatat nilai terbayar baru (replace absolut, lihat kontrak
// ApplyPaymentRequest). Validasi rentang dan atomisitas ada di
// repository; di sini orkestrasi dan event.
func (s *paymentService) Apply(id uint, paid money.Cents) (*payment.Payment, error) {
	updated, err := s.repo.UpdatePaidAmount(id, paid)
	if err != nil {
		return nil, err
	}

	s.publishUpdated(updated)
	return updated, nil
}

// ExportCSV menulis snapshot CSV working set ke w dan mengembalikan
// nama berkas unduhan.
func (s *paymentService) ExportCSV(w io.Writer, filter payment.Filter, now time.Time) (string, error) {
	payments, err := s.repo.List(filter)
	if err != nil {
		return "", err
	}
	if err := payment.WriteCSV(w, payments, now); err != nil {
		return "", err
	}
	return payment.CSVFilename(now), nil
}

func (s *paymentService) publishUpdated(p *payment.Payment) {
	event := struct {
		PaymentID       uint        `json:"paymentId"`
		PreorderID      uint        `json:"preorderId"`
		TransactionCode string      `json:"transactionCode"`
		AmountCents     money.Cents `json:"amountCents"`
		PaidAmountCents money.Cents `json:"paidAmountCents"`
		RemainingCents  money.Cents `json:"remainingCents"`
		Timestamp       string      `json:"timestamp"`
	}{
		PaymentID:       p.ID,
		PreorderID:      p.PreorderID,
		TransactionCode: p.TransactionCode(),
		AmountCents:     p.AmountCents,
		PaidAmountCents: p.PaidAmountCents,
		RemainingCents:  p.RemainingCents(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("PERINGATAN: gagal serialize event payment.updated: %v", err)
		return
	}
	if err := s.publisher.Publish(messaging.KeyPaymentUpdated, body); err != nil {
		log.Printf("PERINGATAN: payment %d ter-update, tapi GAGAL publish event: %v", p.ID, err)
	}
}
