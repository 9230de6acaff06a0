// internal/payment/summary.go
package payment

import "github.com/slmn-lf/east-store-sub000/internal/money"

// Summary adalah statistik turunan atas satu working set pembayaran.
// Tidak pernah disimpan; selalu dihitung ulang dari koleksi saat ini.
type Summary struct {
	TotalPemesan       int         `json:"total_pemesan"`
	TotalBelumLunas    int         `json:"total_belum_lunas"`
	TotalTerbayarCents money.Cents `json:"total_terbayar_cents"`
	TotalSisaCents     money.Cents `json:"total_sisa_cents"`
}

// Summarize menghitung statistik ringkasan. Fungsi murni: tidak
// menyentuh store dan tidak memutasi input.
func Summarize(payments []Payment) Summary {
	var s Summary
	s.TotalPemesan = len(payments)
	for i := range payments {
		p := &payments[i]
		s.TotalTerbayarCents += p.PaidAmountCents
		// sisa per baris di-clamp ke 0, jangan menjumlah sisa negatif
		remaining := p.RemainingCents()
		s.TotalSisaCents += remaining
		if remaining > 0 {
			s.TotalBelumLunas++
		}
	}
	return s
}

// TotalRevenueCents menjumlah seluruh tagihan (amount_cents) di
// working set; dipakai blok ringkasan CSV.
func TotalRevenueCents(payments []Payment) money.Cents {
	var total money.Cents
	for i := range payments {
		total += payments[i].AmountCents
	}
	return total
}
