package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/brackup/brackup-cli/internal/api"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// tokenKey is the single persisted key holding the bearer token.
const tokenKey = "brackup_token"

// Open initializes the local store and ensures the schema is up to date.
// For local-only use, dbPath is the filename. When primaryURL is set, the
// store runs against a remote libsql replica instead.
func Open(dbPath string, primaryURL string, authToken string) (*sql.DB, func(), error) {
	var (
		db  *sql.DB
		err error
	)
	if primaryURL == "" {
		log.Debug("Opening local store", "path", dbPath)
		db, err = sql.Open("libsql", "file:"+dbPath)
	} else {
		log.Debug("Opening remote-replica store", "url", primaryURL)
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local store: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	teardown := func() {
		db.Close()
	}
	return db, teardown, nil
}

// store handles all persistence for the client session.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

var _ Store = (*store)(nil)

func (s *store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return value, nil
}

func (s *store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

func (s *store) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Profile returns the snapshot of the last verified user, or nil when no
// snapshot exists. The snapshot is informational only; it never stands in
// for a verified session.
func (s *store) Profile() (*api.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRow("SELECT data FROM profile WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile snapshot: %w", err)
	}

	var user api.User
	if err := msgpack.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	return &user, nil
}

func (s *store) SetProfile(user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := msgpack.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode profile snapshot: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO profile (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, data)
	if err != nil {
		return fmt.Errorf("failed to persist profile snapshot: %w", err)
	}
	return nil
}

func (s *store) ClearProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM profile WHERE id = 1")
	if err != nil {
		return fmt.Errorf("failed to clear profile snapshot: %w", err)
	}
	return nil
}
