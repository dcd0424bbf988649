package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBaseName(t *testing.T) {
	assert.Equal(t, "report_2024", SanitizeBaseName("report 2024.pdf"))
	assert.Equal(t, "my-file_v2", SanitizeBaseName("my-file_v2.PNG"))
	assert.Equal(t, "_tude", SanitizeBaseName("étude.pdf"))
	assert.Equal(t, "upload", SanitizeBaseName(".pdf"))
}

func TestSanitizeBaseNameStripsPath(t *testing.T) {
	assert.Equal(t, "secret", SanitizeBaseName("/etc/passwd/../secret.png"))
}

func TestStoredObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "photo_of_cat_1700000000000.png", StoredObjectName("photo of cat.png", now))
	assert.Equal(t, "doc_1700000000000.pdf", StoredObjectName("doc.PDF", now))
}

func TestStoredObjectNamesDiffer(t *testing.T) {
	a := StoredObjectName("a.png", time.UnixMilli(1))
	b := StoredObjectName("a.png", time.UnixMilli(2))
	assert.NotEqual(t, a, b)
}
