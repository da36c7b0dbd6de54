package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"streamhub/internal/domain"
)

// LocalStore writes banners to a directory on disk. Paths it hands out are
// slash-separated and relative to root, e.g. "static/banners/<uuid>.jpg".
type LocalStore struct {
	root string
	dir  string
}

var _ BannerStore = (*LocalStore)(nil)

// NewLocalStore creates root/dir if needed. Calling it again for an existing
// directory is harmless.
func NewLocalStore(root, dir string) (*LocalStore, error) {
	dir = path.Clean(filepath.ToSlash(dir))
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
		return nil, fmt.Errorf("failed to create banner directory: %w", err)
	}
	return &LocalStore{root: root, dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, upload *FileUpload) (string, error) {
	if err := validateUpload(upload); err != nil {
		return "", err
	}

	relPath := path.Join(s.dir, bannerName(upload.Filename))
	fullPath := s.fullPath(relPath)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageWriteFailed, err)
	}

	_, err = io.Copy(f, upload.Reader)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("%w: %w", domain.ErrStorageWriteFailed, err)
	}

	return relPath, nil
}

func (s *LocalStore) Delete(ctx context.Context, relPath string) {
	if relPath == "" {
		return
	}
	if !s.contains(relPath) {
		log.Printf("Refusing to delete banner outside %s: %s", s.dir, relPath)
		return
	}

	err := os.Remove(s.fullPath(relPath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to delete banner %s: %v", relPath, err)
	}
}

func (s *LocalStore) URL(relPath string) string {
	return "/" + strings.TrimPrefix(relPath, "/")
}

func (s *LocalStore) fullPath(relPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(relPath))
}

func (s *LocalStore) contains(relPath string) bool {
	cleaned := path.Clean(filepath.ToSlash(relPath))
	if s.dir == "." {
		return cleaned != "." && cleaned != ".." && !strings.HasPrefix(cleaned, "../") && !path.IsAbs(cleaned)
	}
	return strings.HasPrefix(cleaned, s.dir+"/")
}
