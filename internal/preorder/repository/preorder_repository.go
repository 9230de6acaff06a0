// internal/preorder/repository/preorder_repository.go
package repository

import (
	"errors"

	"github.com/slmn-lf/east-store-sub000/internal/payment"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"

	"gorm.io/gorm"
)

// Kontrak repository preorder. Confirm dan Delete menjalankan efek
// samping ledger di dalam satu transaksi DB sehingga pasangan
// preorder/payment tidak pernah setengah ter-update.
type PreorderRepository interface {
	Save(po *preorder.Preorder) (*preorder.Preorder, error)
	FindAll() ([]preorder.Preorder, error)
	FindByID(id uint) (*preorder.Preorder, error)
	Confirm(id uint) (*preorder.Preorder, error)
	Delete(id uint) error
}

type preorderRepository struct {
	db *gorm.DB
}

func NewPreorderRepository(db *gorm.DB) PreorderRepository {
	return &preorderRepository{db: db}
}

func (r *preorderRepository) Save(po *preorder.Preorder) (*preorder.Preorder, error) {
	if err := r.db.Create(po).Error; err != nil {
		return nil, err
	}
	return po, nil
}

func (r *preorderRepository) FindAll() ([]preorder.Preorder, error) {
	var preorders []preorder.Preorder
	if err := r.db.Preload("Product").Order("created_at DESC").Find(&preorders).Error; err != nil {
		return nil, err
	}
	return preorders, nil
}

func (r *preorderRepository) FindByID(id uint) (*preorder.Preorder, error) {
	var po preorder.Preorder
	if err := r.db.Preload("Product").First(&po, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, preorder.ErrNotFound
		}
		return nil, err
	}
	return &po, nil
}

// Confirm menjalankan transisi unconfirmed -> confirmed beserta efek
// sampingnya pada ledger, atomik dalam satu transaksi:
//   - update status bersyarat (WHERE status = 'unconfirmed') sehingga
//     dua konfirmasi bersamaan hanya lolos satu;
//   - buat baris payment kalau belum ada, atau reset statusnya ke
//     pending kalau sudah ada (konfirmasi ulang tidak menduplikasi).
func (r *preorderRepository) Confirm(id uint) (*preorder.Preorder, error) {
	var po preorder.Preorder

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&preorder.Preorder{}).
			Where("id = ? AND status = ?", id, preorder.StatusUnconfirmed).
			Update("status", preorder.StatusConfirmed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// bedakan tidak-ada dari sudah-terkonfirmasi
			var count int64
			if err := tx.Model(&preorder.Preorder{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return preorder.ErrNotFound
			}
			return preorder.ErrAlreadyConfirmed
		}

		if err := tx.Preload("Product").First(&po, "id = ?", id).Error; err != nil {
			return err
		}

		var pay payment.Payment
		err := tx.Where("preorder_id = ?", id).First(&pay).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pay = payment.Payment{
				PreorderID:      id,
				Method:          payment.MethodPreorder,
				AmountCents:     po.TotalPriceCents,
				PaidAmountCents: 0,
				Status:          payment.StatusPending,
			}
			return tx.Create(&pay).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&pay).Update("status", payment.StatusPending).Error
	})
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// Delete menghapus preorder beserta baris payment terkait dalam satu
// transaksi; tidak boleh ada payment yatim tersisa.
func (r *preorderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("preorder_id = ?", id).Delete(&payment.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&preorder.Preorder{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return preorder.ErrNotFound
		}
		return nil
	})
}
