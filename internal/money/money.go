// internal/money/money.go
package money

import "strconv"

// Cents adalah representasi uang internal dalam satuan minor (sen).
// Semua perhitungan harga memakai tipe ini; konversi ke Rupiah (satuan
// mayor) hanya terjadi di lapisan presentasi (JSON display / CSV).
type Cents int64

// FromMajor mengkonversi nilai Rupiah (satuan mayor) ke sen.
func FromMajor(major int64) Cents {
	return Cents(major * 100)
}

// Major mengembalikan nilai dalam satuan mayor (pembagian bulat 100).
func (c Cents) Major() int64 {
	return int64(c) / 100
}

// IsNegative melaporkan apakah nilai di bawah nol.
func (c Cents) IsNegative() bool {
	return c < 0
}

// GroupID memformat angka dengan pemisah ribuan gaya id-ID (titik),
// tanpa desimal. Contoh: 12500000 -> "12.500.000".
func GroupID(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	// sisipkan titik setiap 3 digit dari belakang
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, '.')
		out = append(out, s[i:i+3]...)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatMajorID merender nilai sebagai angka mayor ber-pemisah ribuan,
// misal Cents(25000000) -> "250.000". Dipakai kolom nominal di CSV.
func (c Cents) FormatMajorID() string {
	return GroupID(c.Major())
}

// FormatIDR merender nilai sebagai string mata uang lengkap,
// misal Cents(25000000) -> "Rp 250.000".
func (c Cents) FormatIDR() string {
	return "Rp " + c.FormatMajorID()
}
