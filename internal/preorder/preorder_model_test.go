// internal/preorder/preorder_model_test.go
package preorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{
		"081234567890",   // 0 + 11 digit
		"0812345678",     // 0 + 9 digit
		"6281234567890",  // 62 + 11 digit
		"62123456789012", // 62 + 12 digit
	}
	for _, phone := range valid {
		assert.True(t, ValidPhone(phone), "harus valid: %s", phone)
	}

	invalid := []string{
		"",
		"12345678901", // tidak diawali 0/62
		"08123",       // terlalu pendek
		"0812345678901234567", // terlalu panjang
		"0812-345-678", // mengandung non-digit
		"+6281234567890",
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhone(phone), "harus invalid: %s", phone)
	}
}

func TestCreatePreorderRequest_Validate(t *testing.T) {
	base := CreatePreorderRequest{
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. Merdeka No. 1, Surabaya",
		ProductID:       1,
		Size:            "L",
		Quantity:        2,
	}

	assert.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(r *CreatePreorderRequest)
	}{
		{"nama kosong", func(r *CreatePreorderRequest) { r.CustomerName = "" }},
		{"alamat kosong", func(r *CreatePreorderRequest) { r.CustomerAddress = "" }},
		{"telepon invalid", func(r *CreatePreorderRequest) { r.CustomerPhone = "12345" }},
		{"kuantitas nol", func(r *CreatePreorderRequest) { r.Quantity = 0 }},
		{"kuantitas di atas batas", func(r *CreatePreorderRequest) { r.Quantity = 101 }},
		{"produk kosong", func(r *CreatePreorderRequest) { r.ProductID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			err := req.Validate()
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreatePreorderRequest_Normalize(t *testing.T) {
	req := CreatePreorderRequest{
		CustomerName:    "  Budi  ",
		CustomerPhone:   " 081234567890 ",
		CustomerAddress: " Jl. Merdeka ",
		Size:            " L ",
	}
	req.Normalize()
	assert.Equal(t, "Budi", req.CustomerName)
	assert.Equal(t, "081234567890", req.CustomerPhone)
	assert.Equal(t, "Jl. Merdeka", req.CustomerAddress)
	assert.Equal(t, "L", req.Size)
}

func TestPreorder_TransactionCode(t *testing.T) {
	po := &Preorder{ID: 42}
	assert.Equal(t, "PRE-42", po.TransactionCode())
}
