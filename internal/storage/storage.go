// Package storage keeps banner images outside the database. Records only
// reference a banner by the path a BannerStore returns.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"streamhub/internal/domain"
)

const defaultExtension = "jpg"

type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type BannerStore interface {
	// Save validates and writes the upload under a fresh unique name and
	// returns its relative path.
	Save(ctx context.Context, upload *FileUpload) (string, error)
	// Delete removes a stored banner. It never reports failure: an empty
	// path or a missing file is a no-op and errors are only logged.
	Delete(ctx context.Context, path string)
	// URL returns the public URL a browser can load the banner from.
	URL(path string) string
}

func validateUpload(upload *FileUpload) error {
	if upload == nil || upload.Filename == "" {
		return domain.ErrMissingFile
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return domain.ErrUnsupportedMediaType
	}
	return nil
}

// bannerName returns "<uuid>.<ext>" keeping the uploaded file's extension.
func bannerName(filename string) string {
	ext := strings.TrimPrefix(path.Ext(path.Base(strings.ReplaceAll(filename, `\`, "/"))), ".")
	if ext == "" {
		ext = defaultExtension
	}
	return uuid.NewString() + "." + ext
}
