package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"voltly/internal/model"

	"github.com/rs/zerolog"
)

// fileStorage implements Storage as a JSON file on disk, the durable
// local-storage analogue for single-tenant deployments.
type fileStorage struct {
	path   string
	logger zerolog.Logger
}

// NewFileStorage creates a file-backed cart storage at the given path.
func NewFileStorage(path string, logger zerolog.Logger) Storage {
	return &fileStorage{
		path:   path,
		logger: logger.With().Str("component", "cart-storage").Logger(),
	}
}

// Load reads the stored line set. A missing or unparseable file yields an
// empty cart without error.
func (f *fileStorage) Load(_ context.Context) ([]model.CartLine, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", f.path, err)
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("cart file is corrupt, treating as empty")
		return nil, nil
	}

	return lines, nil
}

// Save writes the line set as JSON.
func (f *fileStorage) Save(_ context.Context, lines []model.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cart directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", f.path, err)
	}

	return nil
}
