// internal/product/slug_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Kaos Polos Hitam":     "kaos-polos-hitam",
		"  Hoodie  Oversize  ": "hoodie-oversize",
		"Edisi #1 (Terbatas)!": "edisi-1-terbatas",
		"MERCH":                "merch",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in))
	}
}
