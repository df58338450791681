package uploads

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the résumé size ceiling.
const MaxUploadSize = 20 << 20 // 20MB

// ErrValidation marks client errors: bad file type, oversize upload, missing
// required field.
var ErrValidation = errors.New("validation failed")

var allowedExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Either the extension or the declared MIME type matching is enough; the
// validator deliberately trusts client-declared metadata and does not sniff
// content.
var allowedMIMEs = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ValidateFile checks the declared name, MIME type, and size against the
// allow-list and the size ceiling.
func ValidateFile(fileName, mimeType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	_, extOK := allowedExts[ext]

	mime := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	_, mimeOK := allowedMIMEs[mime]

	if !extOK && !mimeOK {
		return fmt.Errorf("%w: only PDF, DOC, or DOCX files are accepted", ErrValidation)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds the %dMB limit", ErrValidation, MaxUploadSize>>20)
	}
	return nil
}
