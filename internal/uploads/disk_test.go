package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir)

	name, fullPath, err := store.Save(context.Background(), "My Resume.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(name, "My_Resume_") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected generated name %q", name)
	}
	if fullPath != filepath.Join(dir, name) {
		t.Fatalf("unexpected path %q", fullPath)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestDiskStoreSaveGeneratesDistinctNames(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		name, _, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate generated name %q", name)
		}
		seen[name] = struct{}{}
	}
}
