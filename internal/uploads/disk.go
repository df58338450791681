package uploads

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"easyhire-backend/internal/shared/util"
)

// DiskStore writes validated uploads into a fixed directory with
// collision-resistant generated names. No cleanup and no quota; unbounded
// growth is accepted.
type DiskStore struct {
	Dir string
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

// Save writes the reader to disk under a generated name:
// sanitized base + unix timestamp + short random suffix + original extension.
// It returns the generated name and the full path.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	base, ext := util.SanitizeBaseName(originalName)
	name := fmt.Sprintf("%s_%d_%s%s", base, time.Now().Unix(), randomSuffix(), ext)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	fullPath := filepath.Join(s.Dir, name)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", "", fmt.Errorf("write upload file: %w", err)
	}

	return name, fullPath, nil
}

func randomSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(b[:])
}
