// internal/preorder/validation.go
package preorder

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Nomor telepon lokal: diawali 0 atau 62, diikuti 9-12 digit.
var phonePattern = regexp.MustCompile(`^(0|62)[0-9]{9,12}$`)

// ValidPhone memeriksa format nomor telepon lokal.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// RegisterValidators mendaftarkan tag binding kustom 'idphone' ke
// engine validator milik gin. Dipanggil sekali saat boot (dan di test
// handler).
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
			return ValidPhone(fl.Field().String())
		})
	}
}
