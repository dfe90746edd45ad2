package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/pkoval/provenly/internal/model"
)

// ErrNotFound is returned when no project exists for an id.
var ErrNotFound = errors.New("project not found")

// Store keeps projects and cached fetch blobs. The attribution engine is
// store-agnostic: only the pipeline loads projects and hands the engine
// plain draft text and sources.
type Store interface {
	// GetProject returns the project with the given id, or ErrNotFound.
	GetProject(id string) (*model.Project, error)
	// PutProject inserts or replaces a project.
	PutProject(p *model.Project) error
	// DeleteProject removes a project. Deleting a missing id is not an error.
	DeleteProject(id string) error
	// ListProjects returns all projects ordered by creation time.
	ListProjects() ([]*model.Project, error)

	// GetBlob returns a cached blob, if present and unexpired.
	GetBlob(key string) ([]byte, bool)
	// SetBlob caches a blob with the given TTL (0 = no expiry).
	SetBlob(key string, value []byte, ttl time.Duration) error

	Close() error
}

// BlobKey derives a stable cache key for a source URL.
func BlobKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "provenly:v1:" + hex.EncodeToString(hash[:])
}

// Open creates a store for the configured backend.
func Open(cfg model.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, errors.New("unknown store backend: " + cfg.Backend)
	}
}
