// internal/payment/payment_model.go
package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"
)

// Status pembayaran (kasar, bukan state machine penuh).
const (
	StatusPending = "pending"
)

// Metode pembayaran yang dikenal.
const (
	MethodPreorder = "preorder"
	MethodWhatsapp = "whatsapp"
)

var ErrNotFound = errors.New("pembayaran tidak ditemukan")

// AmountRangeError menolak nilai terbayar di luar [0, AmountCents].
// Total tagihan disertakan agar admin bisa mengoreksi inputnya.
type AmountRangeError struct {
	TotalCents money.Cents
}

func (e *AmountRangeError) Error() string {
	return fmt.Sprintf("jumlah terbayar harus di antara 0 dan %d sen (total tagihan %s)",
		int64(e.TotalCents), e.TotalCents.FormatIDR())
}

// Payment adalah model domain dan GORM untuk tabel 'payments'.
// Satu baris per preorder, dikaitkan lewat foreign key preorder_id.
// Invarian: 0 <= PaidAmountCents <= AmountCents setelah setiap update.
type Payment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PreorderID      uint              `gorm:"uniqueIndex;not null" json:"preorder_id"`
	Preorder        preorder.Preorder `gorm:"foreignKey:PreorderID" json:"preorder"`
	Method          string            `gorm:"size:50;not null" json:"method"`
	AmountCents     money.Cents       `gorm:"not null" json:"amount_cents"`
	PaidAmountCents money.Cents       `gorm:"not null;default:0" json:"paid_amount_cents"`
	Status          string            `gorm:"size:50;not null" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TransactionCode adalah kode transaksi tampilan, diturunkan dari id
// preorder. Murni kosmetik; relasi sebenarnya lewat PreorderID.
func (p *Payment) TransactionCode() string {
	return fmt.Sprintf("PRE-%d", p.PreorderID)
}

// RemainingCents adalah sisa tagihan, tidak pernah negatif.
func (p *Payment) RemainingCents() money.Cents {
	if p.PaidAmountCents >= p.AmountCents {
		return 0
	}
	return p.AmountCents - p.PaidAmountCents
}

// FullyPaid (lunas) berarti sisa tagihan nol.
func (p *Payment) FullyPaid() bool {
	return p.RemainingCents() == 0
}
