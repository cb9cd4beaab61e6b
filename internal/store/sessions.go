package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// ErrExists is returned when creating a session whose id is taken.
var ErrExists = errors.New("session already exists")

// Session is a persisted tracker session. Settings holds the settings
// document as JSON; the store does not interpret it.
type Session struct {
	ID           string
	Label        string
	Settings     string
	SettingsHash string
	Seed         uint64
	WorldHash    string
	Seq          int64
}

// CreateSession inserts a session and assigns its seq. The Seq field of
// sess is ignored.
func (s *Store) CreateSession(ctx context.Context, sess Session) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM sessions`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}

	// Seeds are stored bit-for-bit as signed 64-bit integers.
	res, err := tx.ExecContext(ctx, `
		INSERT INTO sessions
		(id, label, settings, settings_hash, seed, world_hash, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sess.ID,
		sess.Label,
		sess.Settings,
		sess.SettingsHash,
		int64(sess.Seed),
		sess.WorldHash,
		seq,
	)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	} else if n == 0 {
		return 0, fmt.Errorf("create session %q: %w", sess.ID, ErrExists)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return seq, nil
}

// ReadSession returns the session with the given id.
func (s *Store) ReadSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, settings, settings_hash, seed, world_hash, seq
		FROM sessions
		WHERE id = ?
	`, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("read session %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session %q: %w", id, err)
	}
	return sess, nil
}

// ListSessions returns every session in creation order.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, settings, settings_hash, seed, world_hash, seq
		FROM sessions
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// DeleteSession removes a session and its collected items.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	} else if n == 0 {
		return fmt.Errorf("delete session %q: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (Session, error) {
	var sess Session
	var seed int64
	if err := r.Scan(
		&sess.ID,
		&sess.Label,
		&sess.Settings,
		&sess.SettingsHash,
		&seed,
		&sess.WorldHash,
		&sess.Seq,
	); err != nil {
		return Session{}, err
	}
	sess.Seed = uint64(seed)
	return sess, nil
}
