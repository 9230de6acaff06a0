// internal/money/money_test.go
package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Cents(12500000), FromMajor(125000))
	assert.Equal(t, Cents(0), FromMajor(0))
}

func TestMajor(t *testing.T) {
	assert.Equal(t, int64(250000), Cents(25000000).Major())
	// pembagian bulat: sisa sen dibuang di tampilan
	assert.Equal(t, int64(10), Cents(1050).Major())
}

func TestGroupID(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		12500:    "12.500",
		250000:   "250.000",
		12500000: "12.500.000",
		-1500:    "-1.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, GroupID(in), "GroupID(%d)", in)
	}
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 250.000", Cents(25000000).FormatIDR())
	assert.Equal(t, "Rp 0", Cents(0).FormatIDR())
	assert.Equal(t, "250.000", Cents(25000000).FormatMajorID())
}
