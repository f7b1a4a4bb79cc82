// Package preferences persists user settings such as the translation
// language pair in a SQLite key/value table.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const (
	KeySourceLanguageCode = "source_language_code"
	KeyTargetLanguageCode = "target_language_code"
	KeyGlossaryEnabled    = "glossary_enabled"

	DefaultSourceLanguageCode = "en-US"
	DefaultTargetLanguageCode = "sr-Latn"

	// MemoryPath keeps the store in memory for the lifetime of the process.
	MemoryPath = ":memory:"
)

var ErrNotFound = errors.New("preference not found")

// Store is a SQLite-backed preference store. It is safe for concurrent use.
type Store struct {
	db    *sql.DB
	log   *slog.Logger
	clock func() time.Time
}

// Open opens or creates the store at path.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("path must be specified")
	}
	if log == nil {
		log = slog.Default()
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	s := &Store{db: db, log: log, clock: time.Now}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("preferences opened", slog.String("path", path))

	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key must be specified")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences(key, value, updated_at)
		 VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, s.clock().UTC())
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	s.log.Debug("preference updated", slog.String("key", key))
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}

func (s *Store) getOrDefault(ctx context.Context, key, def string) (string, error) {
	value, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return value, err
}

func (s *Store) SourceLanguageCode(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, KeySourceLanguageCode, DefaultSourceLanguageCode)
}

func (s *Store) TargetLanguageCode(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, KeyTargetLanguageCode, DefaultTargetLanguageCode)
}

// GlossaryEnabled reports false until the preference has been set.
func (s *Store) GlossaryEnabled(ctx context.Context) (bool, error) {
	value, err := s.getOrDefault(ctx, KeyGlossaryEnabled, "false")
	if err != nil {
		return false, err
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", KeyGlossaryEnabled, value, err)
	}
	return enabled, nil
}

func (s *Store) SetSourceLanguageCode(ctx context.Context, code string) error {
	return s.Set(ctx, KeySourceLanguageCode, code)
}

func (s *Store) SetTargetLanguageCode(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("target language code must be specified")
	}
	return s.Set(ctx, KeyTargetLanguageCode, code)
}

func (s *Store) SetGlossaryEnabled(ctx context.Context, enabled bool) error {
	return s.Set(ctx, KeyGlossaryEnabled, strconv.FormatBool(enabled))
}
