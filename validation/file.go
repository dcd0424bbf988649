package validation

import (
	"fmt"
	"strings"
)

// FileConstraints bounds an upload candidate. AllowedTypes are MIME types.
type FileConstraints struct {
	AllowedTypes []string
	MaxBytes     int64
}

// CheckFile validates a candidate file against the constraints. Type and
// size are checked independently so a file that is both too large and of a
// disallowed type reports both violations.
func (c FileConstraints) CheckFile(contentType string, size int64) Errors {
	errs := Errors{}
	if !c.typeAllowed(contentType) {
		errs.Add("file", fmt.Sprintf("file type %s is not allowed (allowed: %s)",
			contentType, strings.Join(c.AllowedTypes, ", ")))
	}
	if size > c.MaxBytes {
		errs.Add("file", fmt.Sprintf("file size %d exceeds the limit of %d bytes", size, c.MaxBytes))
	}
	return errs
}

func (c FileConstraints) typeAllowed(contentType string) bool {
	for _, t := range c.AllowedTypes {
		if strings.EqualFold(strings.TrimSpace(t), contentType) {
			return true
		}
	}
	return false
}
