package helper

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// WhatsAppURL builds a wa.me link for an Indonesian phone number.
// Returns "" when the number has no digits.
func WhatsAppURL(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, "62"):
		digits = digits[2:]
	case strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}
	if digits == "" {
		return ""
	}
	return "https://wa.me/62" + digits
}

// DirectionsURL builds a Google Maps directions link to p
func DirectionsURL(p model.LatLng) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%g,%g", p.Lat, p.Lng)
}
