// internal/artwork/artwork_model.go
package artwork

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("artwork tidak ditemukan")

// Artwork adalah satu karya di galeri storefront. Berkas gambar
// disimpan di asset host eksternal; di sini hanya URL-nya.
type Artwork struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512;not null" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Payload JSON untuk POST /admin/artworks
type CreateArtworkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required,url"`
}
