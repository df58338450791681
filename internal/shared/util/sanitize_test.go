package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatalf("expected traversal rejection")
	}
	got, err := SanitizeFileName("a/b\\c.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a_b_c.pdf" {
		t.Fatalf("expected a_b_c.pdf, got %q", got)
	}
}

func TestSanitizeBaseName(t *testing.T) {
	base, ext := SanitizeBaseName("My Resume (final).PDF")
	if base != "My_Resume_final_" {
		t.Fatalf("unexpected base %q", base)
	}
	if ext != ".pdf" {
		t.Fatalf("unexpected ext %q", ext)
	}

	base, _ = SanitizeBaseName("")
	if base != "upload" {
		t.Fatalf("expected fallback base, got %q", base)
	}
}
