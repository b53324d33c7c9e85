package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
)

// fileConfigDocumentStorage is the filesystem implementation of
// [ConfigDocumentStorage]. Both candidate paths are fixed at construction;
// existence is re-checked on every call.
type fileConfigDocumentStorage struct {
	devPath  string
	prodPath string
}

// NewConfigDocumentStorage builds a [ConfigDocumentStorage] rooted at
// cfg.HomeDir.
func NewConfigDocumentStorage(cfg config.Mailspring) ConfigDocumentStorage {
	return &fileConfigDocumentStorage{
		devPath:  filepath.Join(cfg.DevConfigDir(), ConfigFileName),
		prodPath: filepath.Join(cfg.ProdConfigDir(), ConfigFileName),
	}
}

func (s *fileConfigDocumentStorage) Locate(ctx context.Context) string {
	// any stat failure, permissions included, falls back to production
	if _, err := os.Stat(s.devPath); err == nil {
		return s.devPath
	}

	logger.FromContext(ctx).Debug().Str("path", s.prodPath).Msg("dev config absent, using prod path")
	return s.prodPath
}

func (s *fileConfigDocumentStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case isNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrStatConfigDocument, err)
	}
}

func (s *fileConfigDocumentStorage) Load(ctx context.Context, path string) (ConfigDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfigDocument, err)
	}

	doc, err := ParseConfigDocument(data)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", path).Msg("config document is not valid JSON")
		return nil, err
	}

	return doc, nil
}

// isNotExist treats a non-directory path component like a missing file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
