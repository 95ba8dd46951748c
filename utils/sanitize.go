package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText membersihkan teks bebas dari user (catatan dapur, nomor meja)
// dari markup sebelum disimpan atau ditampilkan.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
