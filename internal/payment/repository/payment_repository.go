// internal/payment/repository/payment_repository.go
package repository

import (
	"errors"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/payment"

	"gorm.io/gorm"
)

// Kontrak repository ledger pembayaran.
type PaymentRepository interface {
	Save(p *payment.Payment) (*payment.Payment, error)
	FindByID(id uint) (*payment.Payment, error)
	FindByPreorderID(preorderID uint) (*payment.Payment, error)
	List(filter payment.Filter) ([]payment.Payment, error)
	UpdatePaidAmount(id uint, paid money.Cents) (*payment.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Save(p *payment.Payment) (*payment.Payment, error) {
	if err := r.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) FindByID(id uint) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.Preload("Preorder").Preload("Preorder.Product").First(&p, "payments.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) FindByPreorderID(preorderID uint) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.Preload("Preorder").Preload("Preorder.Product").
		First(&p, "preorder_id = ?", preorderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List mengembalikan working set: gabung dengan preorder untuk filter
// nama pemesan, preload relasi untuk tampilan.
func (r *paymentRepository) List(filter payment.Filter) ([]payment.Payment, error) {
	q := r.db.
		Preload("Preorder").Preload("Preorder.Product").
		Joins("JOIN preorders ON preorders.id = payments.preorder_id")

	if filter.Status != "" {
		q = q.Where("payments.status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("preorders.customer_name LIKE ?", "%"+filter.Search+"%")
	}

	var payments []payment.Payment
	if err := q.Order("payments.id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdatePaidAmount mengganti paid_amount_cents secara absolut.
//
// Validasi rentang terjadi sebelum tulis, dan UPDATE-nya sendiri
// diberi guard `amount_cents >= ?` di WHERE sehingga invarian
// 0 <= paid <= amount tidak bisa dilanggar oleh dua update bersamaan
// (tidak ada read-modify-write tanpa pengaman).
func (r *paymentRepository) UpdatePaidAmount(id uint, paid money.Cents) (*payment.Payment, error) {
	var p payment.Payment
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, err
	}

	if paid.IsNegative() || paid > p.AmountCents {
		return nil, &payment.AmountRangeError{TotalCents: p.AmountCents}
	}

	res := r.db.Model(&payment.Payment{}).
		Where("id = ? AND amount_cents >= ?", id, paid).
		Update("paid_amount_cents", paid)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// baris hilang di antara baca dan tulis
		return nil, payment.ErrNotFound
	}

	return r.FindByID(id)
}
