package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeBaseName strips the path, drops the extension and replaces every
// character outside [a-zA-Z0-9_-] with an underscore, so the result is safe
// as an object-store key segment.
func SanitizeBaseName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}

// StoredObjectName builds the collision-resistant key an upload is stored
// under: sanitized base name plus a timestamp, keeping the original
// extension.
func StoredObjectName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s_%d%s", SanitizeBaseName(original), now.UnixMilli(), ext)
}
