// internal/preorder/service/preorder_service.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/slmn-lf/east-store-sub000/internal/messaging"
	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"
	"github.com/slmn-lf/east-store-sub000/internal/preorder/repository"
	productrepo "github.com/slmn-lf/east-store-sub000/internal/product/repository"
)

// Kontrak service preorder: intake pelanggan + aksi admin.
type PreorderService interface {
	Create(req preorder.CreatePreorderRequest) (*preorder.Preorder, error)
	List() ([]preorder.Preorder, error)
	Confirm(id uint) (*preorder.Preorder, error)
	Delete(id uint) error
}

type preorderService struct {
	repo      repository.PreorderRepository
	products  productrepo.ProductRepository
	publisher messaging.Publisher
}

func NewPreorderService(repo repository.PreorderRepository, products productrepo.ProductRepository, publisher messaging.Publisher) PreorderService {
	return &preorderService{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

// Create memproses submission storefront.
//
// Harga total dihitung sekali dari harga produk saat ini dan dibekukan
// pada preorder; perubahan harga produk setelah ini tidak berpengaruh.
func (s *preorderService) Create(req preorder.CreatePreorderRequest) (*preorder.Preorder, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prod, err := s.products.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	newPreorder := &preorder.Preorder{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ProductID:       prod.ID,
		Size:            req.Size,
		Quantity:        req.Quantity,
		TotalPriceCents: prod.PriceCents * money.Cents(req.Quantity),
		Status:          preorder.StatusUnconfirmed,
	}

	saved, err := s.repo.Save(newPreorder)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan preorder: %w", err)
	}
	saved.Product = *prod

	s.publishEvent(messaging.KeyPreorderCreated, saved)
	return saved, nil
}

func (s *preorderService) List() ([]preorder.Preorder, error) {
	return s.repo.FindAll()
}

// Confirm menjalankan transisi unconfirmed -> confirmed. Pembuatan
// baris payment terjadi atomik di repository; di sini hanya orkestrasi
// dan publikasi event.
func (s *preorderService) Confirm(id uint) (*preorder.Preorder, error) {
	confirmed, err := s.repo.Confirm(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(messaging.KeyPreorderConfirmed, confirmed)
	return confirmed, nil
}

func (s *preorderService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// publishEvent mengirim snapshot preorder ke exchange. Kegagalan
// publish dicatat tapi tidak menggagalkan operasi; data DB yang utama.
func (s *preorderService) publishEvent(routingKey string, po *preorder.Preorder) {
	event := struct {
		PreorderID      uint        `json:"preorderId"`
		TransactionCode string      `json:"transactionCode"`
		ProductID       uint        `json:"productId"`
		Quantity        int         `json:"quantity"`
		TotalPriceCents money.Cents `json:"totalPriceCents"`
		Status          string      `json:"status"`
		Timestamp       string      `json:"timestamp"`
	}{
		PreorderID:      po.ID,
		TransactionCode: po.TransactionCode(),
		ProductID:       po.ProductID,
		Quantity:        po.Quantity,
		TotalPriceCents: po.TotalPriceCents,
		Status:          string(po.Status),
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("PERINGATAN: gagal serialize event %s: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("PERINGATAN: preorder %d tersimpan, tapi GAGAL publish event %s: %v", po.ID, routingKey, err)
	}
}
