// internal/preorder/repository/preorder_repository_test.go
package repository_test

import (
	"fmt"
	"testing"

	"github.com/slmn-lf/east-store-sub000/internal/money"
	"github.com/slmn-lf/east-store-sub000/internal/payment"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"
	"github.com/slmn-lf/east-store-sub000/internal/preorder/repository"
	"github.com/slmn-lf/east-store-sub000/internal/product"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB menginisialisasi database SQLite in-memory per test.
// Nama DSN memakai nama test agar tiap test terisolasi walau pool
// membuka lebih dari satu koneksi.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err, "Gagal membuka koneksi DB in-memory")

	err = db.AutoMigrate(&product.Product{}, &preorder.Preorder{}, &payment.Payment{})
	assert.NoError(t, err, "Gagal melakukan AutoMigrate")

	return db
}

func seedPreorder(t *testing.T, db *gorm.DB) *preorder.Preorder {
	p := &product.Product{Name: "Kaos Polos", Slug: "kaos-polos", PriceCents: money.FromMajor(125000)}
	assert.NoError(t, db.Create(p).Error)

	po := &preorder.Preorder{
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. Merdeka No. 1",
		ProductID:       p.ID,
		Size:            "L",
		Quantity:        2,
		TotalPriceCents: p.PriceCents * 2,
		Status:          preorder.StatusUnconfirmed,
	}
	assert.NoError(t, db.Create(po).Error)
	return po
}

func TestPreorderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	po := seedPreorder(t, db)

	found, err := repo.FindByID(po.ID)
	assert.NoError(t, err)
	assert.Equal(t, po.ID, found.ID)
	assert.Equal(t, money.FromMajor(250000), found.TotalPriceCents)
	assert.Equal(t, "Kaos Polos", found.Product.Name, "Product harus ter-preload")
}

func TestPreorderRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, preorder.ErrNotFound)
}

func TestPreorderRepository_Confirm_CreatesPaymentOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	po := seedPreorder(t, db)

	// Konfirmasi pertama: status berubah dan satu baris payment dibuat
	confirmed, err := repo.Confirm(po.ID)
	assert.NoError(t, err)
	assert.Equal(t, preorder.StatusConfirmed, confirmed.Status)

	var pay payment.Payment
	assert.NoError(t, db.First(&pay, "preorder_id = ?", po.ID).Error)
	assert.Equal(t, money.Cents(25000000), pay.AmountCents)
	assert.Equal(t, money.Cents(0), pay.PaidAmountCents)
	assert.Equal(t, payment.StatusPending, pay.Status)
	assert.Equal(t, payment.MethodPreorder, pay.Method)

	// Konfirmasi kedua harus ditolak dan TIDAK menduplikasi payment
	_, err = repo.Confirm(po.ID)
	assert.ErrorIs(t, err, preorder.ErrAlreadyConfirmed)

	var count int64
	assert.NoError(t, db.Model(&payment.Payment{}).Where("preorder_id = ?", po.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "konfirmasi ulang tidak boleh membuat payment kedua")
}

func TestPreorderRepository_Confirm_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	_, err := repo.Confirm(12345)
	assert.ErrorIs(t, err, preorder.ErrNotFound)
}

func TestPreorderRepository_Confirm_ReusesExistingPayment(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	po := seedPreorder(t, db)

	// baris payment lama sudah ada (mis. data migrasi)
	existing := payment.Payment{
		PreorderID:      po.ID,
		Method:          payment.MethodWhatsapp,
		AmountCents:     po.TotalPriceCents,
		PaidAmountCents: money.FromMajor(50000),
		Status:          "stale",
	}
	assert.NoError(t, db.Create(&existing).Error)

	_, err := repo.Confirm(po.ID)
	assert.NoError(t, err)

	var count int64
	assert.NoError(t, db.Model(&payment.Payment{}).Where("preorder_id = ?", po.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var pay payment.Payment
	assert.NoError(t, db.First(&pay, "preorder_id = ?", po.ID).Error)
	assert.Equal(t, payment.StatusPending, pay.Status, "payment lama di-reset ke pending")
	assert.Equal(t, money.FromMajor(50000), pay.PaidAmountCents, "nominal terbayar tidak disentuh")
}

func TestPreorderRepository_Delete_CascadesPayment(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	po := seedPreorder(t, db)
	_, err := repo.Confirm(po.ID)
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(po.ID))

	var poCount, payCount int64
	assert.NoError(t, db.Model(&preorder.Preorder{}).Where("id = ?", po.ID).Count(&poCount).Error)
	assert.NoError(t, db.Model(&payment.Payment{}).Where("preorder_id = ?", po.ID).Count(&payCount).Error)
	assert.Equal(t, int64(0), poCount)
	assert.Equal(t, int64(0), payCount, "tidak boleh ada payment yatim setelah delete")
}

func TestPreorderRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPreorderRepository(db)

	err := repo.Delete(777)
	assert.ErrorIs(t, err, preorder.ErrNotFound)
}
