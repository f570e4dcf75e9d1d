package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/config"
)

// UploadPathPrefix is where locally stored files are served from.
const UploadPathPrefix = "/uploads/"

// Storer persists an uploaded file and returns the URL it is reachable at.
type Storer interface {
	Store(ctx context.Context, r io.Reader, originalFilename, contentType string) (string, error)
}

// NewStorer picks the storage backend once from configuration.
func NewStorer(cfg config.StorageConfig, awsCfg aws.Config) Storer {
	if cfg.UseLocal {
		return NewLocalStorer(cfg.LocalDir)
	}
	return NewS3Storer(cfg, awsCfg)
}

// StoredFilename returns a random, sanitized name that keeps the extension of
// the uploaded file.
func StoredFilename(originalFilename string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return SecureFilename(token + filepath.Ext(originalFilename))
}

// SecureFilename strips any directory part and every character outside
// [A-Za-z0-9._-]; whitespace becomes an underscore. Leading dots and
// underscores are removed so the result can never be hidden or traverse up.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), "._")
}

func uploadError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
