package store

import (
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pkoval/provenly/internal/model"
)

const (
	projectPrefix = "project:"
	blobPrefix    = "blob:"
)

// MemoryStore is an in-process store. Projects never expire; cached
// blobs honor their TTL. Suitable for one-shot CLI runs and tests.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// GetProject returns a copy of the stored project.
func (s *MemoryStore) GetProject(id string) (*model.Project, error) {
	val, found := s.cache.Get(projectPrefix + id)
	if !found {
		return nil, ErrNotFound
	}
	p := val.(model.Project)
	return &p, nil
}

// PutProject inserts or replaces a project.
func (s *MemoryStore) PutProject(p *model.Project) error {
	s.cache.Set(projectPrefix+p.ID, *p, gocache.NoExpiration)
	return nil
}

// DeleteProject removes a project.
func (s *MemoryStore) DeleteProject(id string) error {
	s.cache.Delete(projectPrefix + id)
	return nil
}

// ListProjects returns all projects ordered by creation time.
func (s *MemoryStore) ListProjects() ([]*model.Project, error) {
	var projects []*model.Project
	for key, item := range s.cache.Items() {
		if !strings.HasPrefix(key, projectPrefix) {
			continue
		}
		p := item.Object.(model.Project)
		projects = append(projects, &p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

// GetBlob returns a cached blob.
func (s *MemoryStore) GetBlob(key string) ([]byte, bool) {
	if val, found := s.cache.Get(blobPrefix + key); found {
		return val.([]byte), true
	}
	return nil, false
}

// SetBlob caches a blob with the given TTL.
func (s *MemoryStore) SetBlob(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	s.cache.Set(blobPrefix+key, value, ttl)
	return nil
}

// Close is a no-op for the in-process store.
func (s *MemoryStore) Close() error {
	return nil
}
