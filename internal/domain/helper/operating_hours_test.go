package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestParseOperatingHours(t *testing.T) {
	tests := []struct {
		text  string
		ok    bool
		open  int
		close int
	}{
		{"08.00 - 17.00", true, 480, 1020},
		{"8:30-21:00", true, 510, 1260},
		{"Senin-Sabtu 09. 00 - 16. 30", true, 540, 990},
		{"Buka 24 jam", false, 0, 0},
		{"", false, 0, 0},
		{"25.00 - 26.00", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			h, ok := ParseOperatingHours(tt.text)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.open, h.OpenMinute)
				assert.Equal(t, tt.close, h.CloseMinute)
			}
		})
	}
}

func TestIsOpen(t *testing.T) {
	hours := "08.00 - 17.00"
	assert.False(t, IsOpen(hours, at(7, 59)))
	assert.True(t, IsOpen(hours, at(8, 0)))
	assert.True(t, IsOpen(hours, at(16, 59)))
	assert.False(t, IsOpen(hours, at(17, 0)))

	assert.False(t, IsOpen("Tidak ada informasi", at(12, 0)))

	overnight := "18.00 - 02.00"
	assert.True(t, IsOpen(overnight, at(23, 0)))
	assert.True(t, IsOpen(overnight, at(1, 30)))
	assert.False(t, IsOpen(overnight, at(12, 0)))
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/6281234567890", WhatsAppURL("0812-3456-7890"))
	assert.Equal(t, "https://wa.me/6281234567890", WhatsAppURL("+62 812 3456 7890"))
	assert.Equal(t, "", WhatsAppURL(model.DefaultPhone))
	assert.Equal(t, "", WhatsAppURL(""))
}

func TestDirectionsURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&destination=-7.3287,108.2145",
		DirectionsURL(model.LatLng{Lat: -7.3287, Lng: 108.2145}))
}
