// internal/preorder/preorder_model.go
package preorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/product"
)

// Status Preorder (Enum)
type Status string

const (
	StatusUnconfirmed Status = "unconfirmed" // awal, menunggu admin
	StatusConfirmed   Status = "confirmed"   // terminal
)

var (
	ErrNotFound         = errors.New("preorder tidak ditemukan")
	ErrAlreadyConfirmed = errors.New("preorder sudah dikonfirmasi")

	// ErrValidation membungkus semua kegagalan validasi input.
	ErrValidation = errors.New("input tidak valid")
)

// Preorder adalah model domain dan GORM untuk tabel 'preorders'.
//
// TotalPriceCents adalah snapshot harga saat pemesanan dibuat
// (harga produk x kuantitas). Nilai ini dibekukan: perubahan harga
// produk setelahnya tidak boleh mengubahnya.
type Preorder struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone   string          `gorm:"size:20;not null" json:"customer_phone"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	ProductID       uint            `gorm:"index;not null" json:"product_id"`
	Product         product.Product `gorm:"foreignKey:ProductID" json:"product"`
	Size            string          `gorm:"size:20;not null" json:"size"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	TotalPriceCents money.Cents     `gorm:"not null" json:"total_price_cents"`
	Status          Status          `gorm:"size:20;not null" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionCode adalah kode transaksi tampilan untuk pembayaran
// yang terkait dengan preorder ini.
func (p *Preorder) TransactionCode() string {
	return fmt.Sprintf("PRE-%d", p.ID)
}
