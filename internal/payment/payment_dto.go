// internal/payment/payment_dto.go
package payment

import (
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/money"
)

// Payload JSON untuk PUT /admin/payments/:id.
// Pointer membedakan field yang tidak dikirim dari nilai nol yang sah
// (menghapus catatan pembayaran kembali ke 0 itu diperbolehkan).
type ApplyPaymentRequest struct {
	PaidAmountCents *money.Cents `json:"paid_amount_cents" binding:"required"`
}

// Filter membatasi working set pembayaran untuk list/summary/export.
type Filter struct {
	Search string // cocok sebagian pada nama pemesan
	Status string // status pembayaran persis
}

// PaymentResponse adalah bentuk tampilan satu baris ledger, sudah
// digabung dengan data preorder + produk.
type PaymentResponse struct {
	ID              uint        `json:"id"`
	TransactionCode string      `json:"transaction_code"`
	PreorderID      uint        `json:"preorder_id"`
	CustomerName    string      `json:"customer_name"`
	ProductName     string      `json:"product_name"`
	AmountCents     money.Cents `json:"amount_cents"`
	PaidAmountCents money.Cents `json:"paid_amount_cents"`
	RemainingCents  money.Cents `json:"remaining_cents"`
	AmountIDR       string      `json:"amount_idr"`
	PaidIDR         string      `json:"paid_idr"`
	RemainingIDR    string      `json:"remaining_idr"`
	FullyPaid       bool        `json:"lunas"`
	Status          string      `json:"status"`
	Method          string      `json:"method"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ToResponse memetakan model ke bentuk tampilan.
func ToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		TransactionCode: p.TransactionCode(),
		PreorderID:      p.PreorderID,
		CustomerName:    p.Preorder.CustomerName,
		ProductName:     p.Preorder.Product.Name,
		AmountCents:     p.AmountCents,
		PaidAmountCents: p.PaidAmountCents,
		RemainingCents:  p.RemainingCents(),
		AmountIDR:       p.AmountCents.FormatIDR(),
		PaidIDR:         p.PaidAmountCents.FormatIDR(),
		RemainingIDR:    p.RemainingCents().FormatIDR(),
		FullyPaid:       p.FullyPaid(),
		Status:          p.Status,
		Method:          p.Method,
		CreatedAt:       p.CreatedAt,
	}
}

// ToResponses memetakan slice model ke slice tampilan.
func ToResponses(payments []Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToResponse(p))
	}
	return out
}
