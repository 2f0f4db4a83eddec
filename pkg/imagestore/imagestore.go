// Package imagestore persists uploaded assets and hands back the public URL
// the landing payloads embed (landingImage, logo).
package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store interface {
	Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error)
}

// DiskStore writes under baseDir and serves via the static /uploads mount.
// Filenames are random so a re-upload never overwrites an asset a published
// page still references.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".svg":
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, name), nil
}
