package util

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// SanitizeBaseName returns the file's base name with every non-word
// character replaced by an underscore, and its extension (lowercased,
// including the dot). "My Résumé (final).PDF" -> ("My_R_sum__final_", ".pdf").
func SanitizeBaseName(name string) (base string, ext string) {
	clean := filepath.Base(strings.TrimSpace(name))
	ext = strings.ToLower(filepath.Ext(clean))
	base = strings.TrimSuffix(clean, filepath.Ext(clean))
	base = nonWord.ReplaceAllString(base, "_")
	if base == "" {
		base = "upload"
	}
	return base, ext
}
