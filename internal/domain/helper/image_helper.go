package helper

import (
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at offset 8).
// net/http.DetectContentType does not know the WebP signature.
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// DetectImageMIME sniffs the content type and reports whether it is an image/* type
func DetectImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if strings.HasPrefix(mime, "image/") {
		return mime, true
	}
	return mime, false
}

// imageExtensions lists the accepted extensions per sniffed type, preferred first
var imageExtensions = map[string][]string{
	"image/jpeg":   {"jpg", "jpeg"},
	"image/png":    {"png"},
	"image/gif":    {"gif"},
	"image/webp":   {"webp"},
	"image/bmp":    {"bmp"},
	"image/x-icon": {"ico"},
}

// ImageExtension returns the file extension for an upload. The sniffed type decides;
// the original name's extension is kept only when it names the same type.
func ImageExtension(filename, mime string) string {
	exts, ok := imageExtensions[mime]
	if !ok {
		return "bin"
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if slices.Contains(exts, ext) {
		return ext
	}
	return exts[0]
}
