// internal/product/slug.go
package product

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify menurunkan slug URL dari nama produk:
// huruf kecil, non-alfanumerik menjadi '-', tanpa '-' di tepi.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
