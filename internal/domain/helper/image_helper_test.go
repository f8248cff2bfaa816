package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func TestDetectImageMIME(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantMIME string
		wantOK   bool
	}{
		{"png", pngHeader, "image/png", true},
		{"jpeg", jpegHeader, "image/jpeg", true},
		{"gif", []byte("GIF89a\x01\x00\x01\x00"), "image/gif", true},
		{"webp", append([]byte("RIFF\x00\x00\x00\x00WEBP"), make([]byte, 10)...), "image/webp", true},
		{"riff but wave", append([]byte("RIFF\x00\x00\x00\x00WAVE"), make([]byte, 10)...), "audio/wave", false},
		{"text", []byte("hello, world"), "text/plain; charset=utf-8", false},
		{"pdf", []byte("%PDF-1.7\n"), "application/pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ok := DetectImageMIME(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestImageExtension(t *testing.T) {
	assert.Equal(t, "jpeg", ImageExtension("foto.JPEG", "image/jpeg"))
	assert.Equal(t, "png", ImageExtension("logo", "image/png"))
	assert.Equal(t, "webp", ImageExtension("", "image/webp"))
	assert.Equal(t, "bin", ImageExtension("", "image/unknown"))
	assert.Equal(t, "bin", ImageExtension("a.png", "image/unknown"))

	// the sniffed type wins over a misleading name
	assert.Equal(t, "png", ImageExtension("x.html", "image/png"))
	assert.Equal(t, "jpg", ImageExtension("foto.png", "image/jpeg"))
	assert.Equal(t, "gif", ImageExtension("anim.exe", "image/gif"))
}
