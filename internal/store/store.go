package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is written to PRAGMA user_version. A tracker database
// stamped with a higher version belongs to a newer build and is refused.
const schemaVersion = 1

// pragma is a connection setting and the value SQLite reports once it
// has taken effect.
type pragma struct {
	name  string
	value string
	want  string
}

var trackerPragmas = []pragma{
	{name: "journal_mode", value: "WAL", want: "wal"},
	{name: "synchronous", value: "NORMAL", want: "1"},
	{name: "busy_timeout", value: "5000", want: "5000"},
	{name: "foreign_keys", value: "ON", want: "1"},
}

// Store keeps tracker sessions and their collected tokens in one SQLite
// file. It is safe for use by one process at a time.
type Store struct {
	db *sql.DB
}

// Open opens the tracker database at path, creating it when missing.
// Reopening an existing database leaves its sessions intact.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open tracker database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect tracker database %s: %w", path, err)
	}

	// One connection serializes writers and keeps per-connection pragmas
	// in force for every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.configure(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) configure() error {
	for _, p := range trackerPragmas {
		stmt := fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("set %s: %w", p.name, err)
		}
	}
	for _, p := range trackerPragmas {
		if err := s.verifyPragma(p.name, p.want); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("tracker database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create tracker tables: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// verifyPragma compares a pragma's reported value with want, ignoring case.
func (s *Store) verifyPragma(name, want string) error {
	var got string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&got); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("%s = %q, want %q", name, got, want)
	}
	return nil
}
