// Package storage provides local filesystem storage for generated images
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fridgechef/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// LocalImageStore persists generated images on the local filesystem and
// returns the public URL path they are served from.
type LocalImageStore struct {
	basePath  string
	publicURL string
	logger    *zap.Logger
}

// NewLocalImageStore creates the store, ensuring the target directory exists
func NewLocalImageStore(basePath, publicURL string, logger *zap.Logger) (outbound.ImageStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &LocalImageStore{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}, nil
}

// Save writes image bytes to disk and returns the public URL
func (s *LocalImageStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Debug("Image saved",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)

	return s.publicURL + "/" + filename, nil
}
