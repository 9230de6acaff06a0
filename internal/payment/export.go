// internal/payment/export.go
package payment

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format tanggal lokal (dd/mm/yyyy) untuk kolom tanggal di CSV.
const csvDateLayout = "02/01/2006"

// CSVFilename mengembalikan nama berkas unduhan dengan tanggal hari
// ini, mis. "payments_2026-08-28.csv".
func CSVFilename(now time.Time) string {
	return "payments_" + now.Format("2006-01-02") + ".csv"
}

// WriteCSV merender snapshot CSV dari satu working set pembayaran:
// blok ringkasan, baris kosong, header kolom, lalu satu baris per
// pembayaran. Fungsi murni atas (payments, now) — input yang sama
// selalu menghasilkan byte yang identik.
//
// Nominal ditulis dalam satuan mayor dengan pemisah ribuan id-ID;
// nama pemesan selalu dibungkus kutip ganda agar koma di dalam nama
// tidak merusak kolom.
func WriteCSV(w io.Writer, payments []Payment, now time.Time) error {
	summary := Summarize(payments)
	revenue := TotalRevenueCents(payments)

	var b strings.Builder

	fmt.Fprintf(&b, "Total Pemesan,%d\n", summary.TotalPemesan)
	fmt.Fprintf(&b, "Total Pendapatan (IDR),%s\n", revenue.FormatMajorID())
	fmt.Fprintf(&b, "Total Terbayar (IDR),%s\n", summary.TotalTerbayarCents.FormatMajorID())
	fmt.Fprintf(&b, "Total Sisa (IDR),%s\n", summary.TotalSisaCents.FormatMajorID())
	fmt.Fprintf(&b, "Total Belum Lunas,%d\n", summary.TotalBelumLunas)
	b.WriteString("\n")

	b.WriteString("Payment ID,Preorder ID,Nama Pemesan,Nominal (IDR),Terbayar (IDR),Sisa (IDR),Status,Metode Pembayaran,Tanggal Pembayaran\n")

	for i := range payments {
		p := &payments[i]
		fmt.Fprintf(&b, "%d,%d,%s,%s,%s,%s,%s,%s,%s\n",
			p.ID,
			p.PreorderID,
			quoteField(p.Preorder.CustomerName),
			p.AmountCents.FormatMajorID(),
			p.PaidAmountCents.FormatMajorID(),
			p.RemainingCents().FormatMajorID(),
			p.Status,
			p.Method,
			p.CreatedAt.Format(csvDateLayout),
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// quoteField membungkus nilai dengan kutip ganda; kutip di dalam nilai
// digandakan sesuai konvensi CSV.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
