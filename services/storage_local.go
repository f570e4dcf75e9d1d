package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

// LocalStorer writes uploads to a directory on disk.
type LocalStorer struct {
	dir string
}

func NewLocalStorer(dir string) *LocalStorer {
	return &LocalStorer{dir: dir}
}

func (s *LocalStorer) Dir() string {
	return s.dir
}

func (s *LocalStorer) Store(ctx context.Context, r io.Reader, originalFilename, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errs.NewUploadFailedError(uploadError("create upload dir", err))
	}

	name := StoredFilename(originalFilename)
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", errs.NewUploadFailedError(uploadError("create file", err))
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errs.NewUploadFailedError(uploadError("write file", err))
	}
	if err := f.Close(); err != nil {
		return "", errs.NewUploadFailedError(uploadError("close file", err))
	}

	log.Debug().Str("file", name).Msg("stored upload on local disk")
	return UploadPathPrefix + name, nil
}
