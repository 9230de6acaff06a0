// internal/preorder/preorder_dto.go
package preorder

import (
	"fmt"
	"strings"
)

// Batas kuantitas satu preorder.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

// Payload JSON untuk POST /preorders
type CreatePreorderRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required,idphone"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	ProductID       uint   `json:"product_id" binding:"required"`
	Size            string `json:"size" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1,max=100"`
}

// Normalize merapikan whitespace di field string.
func (r *CreatePreorderRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.CustomerAddress = strings.TrimSpace(r.CustomerAddress)
	r.Size = strings.TrimSpace(r.Size)
}

// Validate adalah pemeriksaan otoritatif di service layer; binding tag
// di handler hanya garis pertahanan pertama.
func (r *CreatePreorderRequest) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("%w: nama pemesan wajib diisi", ErrValidation)
	}
	if r.CustomerAddress == "" {
		return fmt.Errorf("%w: alamat pengiriman wajib diisi", ErrValidation)
	}
	if r.Size == "" {
		return fmt.Errorf("%w: ukuran wajib diisi", ErrValidation)
	}
	if !ValidPhone(r.CustomerPhone) {
		return fmt.Errorf("%w: nomor telepon harus diawali 0 atau 62 diikuti 9-12 digit", ErrValidation)
	}
	if r.Quantity < MinQuantity || r.Quantity > MaxQuantity {
		return fmt.Errorf("%w: kuantitas harus di antara %d dan %d", ErrValidation, MinQuantity, MaxQuantity)
	}
	if r.ProductID == 0 {
		return fmt.Errorf("%w: produk wajib dipilih", ErrValidation)
	}
	return nil
}
