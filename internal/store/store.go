// Package store persists the encoded finance record. Backends only move
// bytes; decoding and merging live in the record package.
package store

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-tracker/pkg/constants"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("no saved state")

// Store loads and saves the encoded record.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Backend string
	Path    string
}

// Open returns the backend named by cfg.Backend. An empty backend means the
// JSON file backend.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", constants.StorageBackendFile:
		path := cfg.Path
		if path == "" {
			path = constants.DefaultStoragePath
		}
		return NewFileStore(path), nil
	case constants.StorageBackendSQLite:
		return OpenSQLite(cfg.Path)
	case constants.StorageBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
