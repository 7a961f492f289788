package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// ErrNoState reports that no persisted catalogue exists yet. It is the
// caller's cue to start from the seed set rather than a failure.
var ErrNoState = errors.New("no persisted catalogue state")

// FileStore persists the full product collection as a single JSON document.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a store writing to the given file path.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With().Str("component", "file-store").Logger(),
	}
}

// Load reads the persisted collection. It returns ErrNoState when the file
// does not exist and a CORRUPT_STATE error when the file cannot be parsed;
// the process must not silently start with partial data in that case.
func (s *FileStore) Load() ([]model.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", s.path, err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("persisted catalogue state is malformed")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", s.path, model.ErrCorruptState)
	}

	s.logger.Info().Str("file", s.path).Int("products", len(products)).Msg("catalogue state loaded")
	return products, nil
}

// Save writes the whole collection as one atomic unit: the document is
// written to a temp file in the same directory and renamed over the target,
// so a crash mid-write never leaves a torn file behind.
func (s *FileStore) Save(products []model.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalogue state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "products-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp catalogue file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write catalogue state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp catalogue file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace catalogue file %s: %w", s.path, err)
	}

	s.logger.Debug().Str("file", s.path).Int("products", len(products)).Msg("catalogue state saved")
	return nil
}
