package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	contact TEXT,
	payment_type TEXT NOT NULL,
	amount REAL,
	currency TEXT NOT NULL,
	notes TEXT,
	payment_day INTEGER,
	payment_date TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS client_payments (
	client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	period TEXT NOT NULL,
	paid INTEGER NOT NULL DEFAULT 0,
	paid_at TEXT,
	PRIMARY KEY (client_id, period)
);

CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	project_name TEXT NOT NULL,
	service_name TEXT NOT NULL,
	login TEXT,
	url TEXT,
	expires_at TEXT NOT NULL,
	cost REAL,
	currency TEXT NOT NULL,
	notes TEXT,
	category TEXT,
	notify_days INTEGER NOT NULL DEFAULT 7,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT,
	category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chat_history (
	id TEXT PRIMARY KEY,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Store is a SQLite-backed Repository for the local single-user deployment
type Store struct {
	db       *sql.DB
	client   *clientRepository
	service  *serviceRepository
	note     *noteRepository
	category *categoryRepository
	chat     *chatRepository
}

var _ interfaces.Repository = &Store{}

// New opens (creating if needed) the database at path and applies the schema
func New(path string) (*Store, error) {
	if path == "" {
		path = "blueprint.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, goerr.Wrap(err, "failed to enable foreign keys")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Store{
		db:       db,
		client:   &clientRepository{db: db},
		service:  &serviceRepository{db: db},
		note:     &noteRepository{db: db},
		category: &categoryRepository{db: db},
		chat:     &chatRepository{db: db},
	}, nil
}

// Migrate applies the schema to the given database. It is idempotent.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return goerr.Wrap(err, "failed to apply schema")
	}
	return nil
}

func (s *Store) Client() interfaces.ClientRepository {
	return s.client
}

func (s *Store) Service() interfaces.ServiceRepository {
	return s.service
}

func (s *Store) Note() interfaces.NoteRepository {
	return s.note
}

func (s *Store) Category() interfaces.CategoryRepository {
	return s.category
}

func (s *Store) Chat() interfaces.ChatRepository {
	return s.chat
}

func (s *Store) Close() error {
	return s.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// timeFormat is fixed-width so lexicographic ORDER BY on the stored
// string matches chronological order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
