// internal/product/product_model.go
package product

import (
	"errors"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/money"
)

// ErrNotFound dikembalikan repository ketika produk tidak ada.
var ErrNotFound = errors.New("produk tidak ditemukan")

// Product adalah model domain dan GORM untuk tabel 'products'.
// Harga disimpan dalam sen (money.Cents), bukan float.
type Product struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Slug        string      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string      `gorm:"type:text" json:"description"`
	PriceCents  money.Cents `gorm:"not null" json:"price_cents"`
	ImageURL    string      `gorm:"size:512" json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// SizeChart adalah baris tabel ukuran milik satu produk (ukuran dalam cm).
type SizeChart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Label     string    `gorm:"size:20;not null" json:"label"`
	ChestCm   int       `json:"chest_cm"`
	LengthCm  int       `json:"length_cm"`
	SleeveCm  int       `json:"sleeve_cm"`
	CreatedAt time.Time `json:"created_at"`
}
