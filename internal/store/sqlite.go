package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pkoval/provenly/internal/model"
)

// SQLiteStore persists projects and cached fetch blobs in a single
// SQLite database. Durability beyond what SQLite itself provides is
// explicitly out of scope.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and if needed bootstraps) the database at path.
// An empty path defaults to ~/.provenly/projects.db.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".provenly", "projects.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.bootstrap(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) bootstrap() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			draft      TEXT NOT NULL DEFAULT '',
			sources    TEXT NOT NULL DEFAULT '[]',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// GetProject returns the project with the given id.
func (s *SQLiteStore) GetProject(id string) (*model.Project, error) {
	row := s.db.QueryRow(
		`SELECT id, name, draft, sources, created_at, updated_at FROM projects WHERE id = ?`, id)

	var (
		p          model.Project
		sourcesRaw string
		created    int64
		updated    int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Draft, &sourcesRaw, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}
	if err := json.Unmarshal([]byte(sourcesRaw), &p.Sources); err != nil {
		return nil, fmt.Errorf("decoding sources: %w", err)
	}
	p.CreatedAt = time.Unix(created, 0).UTC()
	p.UpdatedAt = time.Unix(updated, 0).UTC()
	return &p, nil
}

// PutProject inserts or replaces a project.
func (s *SQLiteStore) PutProject(p *model.Project) error {
	sources, err := json.Marshal(p.Sources)
	if err != nil {
		return fmt.Errorf("encoding sources: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO projects (id, name, draft, sources, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			draft = excluded.draft,
			sources = excluded.sources,
			updated_at = excluded.updated_at`,
		p.ID, p.Name, p.Draft, string(sources), p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// DeleteProject removes a project.
func (s *SQLiteStore) DeleteProject(id string) error {
	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// ListProjects returns all projects ordered by creation time.
func (s *SQLiteStore) ListProjects() ([]*model.Project, error) {
	rows, err := s.db.Query(
		`SELECT id, name, draft, sources, created_at, updated_at FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*model.Project
	for rows.Next() {
		var (
			p          model.Project
			sourcesRaw string
			created    int64
			updated    int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Draft, &sourcesRaw, &created, &updated); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		if err := json.Unmarshal([]byte(sourcesRaw), &p.Sources); err != nil {
			return nil, fmt.Errorf("decoding sources: %w", err)
		}
		p.CreatedAt = time.Unix(created, 0).UTC()
		p.UpdatedAt = time.Unix(updated, 0).UTC()
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetBlob returns a cached blob if present and unexpired. Expired rows
// are deleted on access.
func (s *SQLiteStore) GetBlob(key string) ([]byte, bool) {
	var (
		value   []byte
		expires int64
	)
	row := s.db.QueryRow(`SELECT value, expires_at FROM blobs WHERE key = ?`, key)
	if err := row.Scan(&value, &expires); err != nil {
		return nil, false
	}
	if expires > 0 && time.Now().Unix() > expires {
		_, _ = s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key)
		return nil, false
	}
	return value, true
}

// SetBlob caches a blob with the given TTL (0 = no expiry).
func (s *SQLiteStore) SetBlob(key string, value []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = time.Now().Add(ttl).Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO blobs (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expires)
	if err != nil {
		return fmt.Errorf("caching blob: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
