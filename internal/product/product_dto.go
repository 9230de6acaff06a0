// internal/product/product_dto.go
package product

import "github.com/slmn-lf/east-store-sub000/internal/money"

// Payload JSON untuk POST /admin/products
type CreateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	PriceCents  money.Cents `json:"price_cents" binding:"required,gt=0"`
	ImageURL    string      `json:"image_url"`
}

// Payload JSON untuk PUT /admin/products/:id
type UpdateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	PriceCents  money.Cents `json:"price_cents" binding:"required,gt=0"`
	ImageURL    string      `json:"image_url"`
}

// Payload JSON untuk POST /admin/products/:id/size-charts
type SizeChartRequest struct {
	Label    string `json:"label" binding:"required"`
	ChestCm  int    `json:"chest_cm" binding:"gte=0"`
	LengthCm int    `json:"length_cm" binding:"gte=0"`
	SleeveCm int    `json:"sleeve_cm" binding:"gte=0"`
}
