package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when no entry matches an id prefix.
	ErrNotFound = errors.New("history entry not found")
	// ErrAmbiguous is returned when an id prefix matches several entries.
	ErrAmbiguous = errors.New("history id prefix is ambiguous")
)

// Fixed width keeps the text column sortable.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one produced script.
type Entry struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Scene      string    `json:"scene,omitempty"`
	Clip       string    `json:"clip,omitempty"`
	Nodes      []string  `json:"nodes,omitempty"`
	TrackCount int       `json:"track_count"`
	Sink       string    `json:"sink,omitempty"`
	Payload    string    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store wraps the history database.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open creates or connects to the history database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, now: time.Now}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path reports the database location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores entry, assigning its ID and CreatedAt when unset.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.Kind) == "" {
		return Entry{}, errors.New("history entry kind is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (id, kind, scene, clip, nodes, track_count, sink, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Kind, entry.Scene, entry.Clip, joinNodes(entry.Nodes),
		entry.TrackCount, entry.Sink, entry.Payload, entry.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert history entry: %w", err)
	}
	return entry, nil
}

// List returns up to limit entries, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := selectColumns + " ORDER BY created_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get resolves an entry by full id or unique prefix.
func (s *Store) Get(ctx context.Context, idPrefix string) (Entry, error) {
	prefix := strings.ToLower(strings.TrimSpace(idPrefix))
	if prefix == "" {
		return Entry{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	rows, err := s.db.QueryContext(ctx, selectColumns+" WHERE substr(id, 1, ?) = ? LIMIT 2", len(prefix), prefix)
	if err != nil {
		return Entry{}, fmt.Errorf("get history entry: %w", err)
	}
	defer rows.Close()
	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}
	switch len(entries) {
	case 0:
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	case 1:
		return entries[0], nil
	default:
		return Entry{}, fmt.Errorf("%w: %s", ErrAmbiguous, idPrefix)
	}
}

// Clear removes every entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM exports")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return n, nil
}

const selectColumns = `SELECT id, kind, scene, clip, nodes, track_count, sink, payload, created_at FROM exports`

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry   Entry
			nodes   string
			created string
		)
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Scene, &entry.Clip, &nodes,
			&entry.TrackCount, &entry.Sink, &entry.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entry.Nodes = splitNodes(nodes)
		ts, err := time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", created, err)
		}
		entry.CreatedAt = ts
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// Node names never contain newlines once sanitized, so they are stored one
// per line.
func joinNodes(nodes []string) string {
	return strings.Join(nodes, "\n")
}

func splitNodes(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "\n")
}
