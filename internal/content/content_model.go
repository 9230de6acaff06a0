// internal/content/content_model.go
package content

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("data tidak ditemukan")

// Setting adalah satu entri konten situs (judul hero, teks tentang,
// link sosial, dst) dalam bentuk key/value.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessage adalah kiriman form kontak storefront. Dipersistenkan
// di DB (bukan di memori proses) dengan kode referensi untuk dirujuk
// pelanggan.
type ContactMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode string    `gorm:"size:36;uniqueIndex;not null" json:"reference_code"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// Payload JSON untuk POST /contact
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required,idphone"`
	Message string `json:"message" binding:"required"`
}

// Payload JSON untuk PUT /admin/settings/:key
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
