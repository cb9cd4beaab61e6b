package store

import (
	"context"
	"fmt"
)

// AppendItem records one collected token and returns its seq within the
// session. Duplicates are allowed: the inventory is a multiset.
func (s *Store) AppendItem(ctx context.Context, sessionID, token string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("append item: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE id = ?`, sessionID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("append item: %w", err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("append item to %q: %w", sessionID, ErrNotFound)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) + 1 FROM collected WHERE session_id = ?
	`, sessionID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("append item: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO collected (session_id, seq, token) VALUES (?, ?, ?)
	`, sessionID, seq, token); err != nil {
		return 0, fmt.Errorf("append item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("append item: %w", err)
	}
	return seq, nil
}

// RemoveItem deletes the most recently collected copy of token. It reports
// whether a copy was found.
func (s *Store) RemoveItem(ctx context.Context, sessionID, token string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM collected
		WHERE session_id = ?
		  AND seq = (SELECT MAX(seq) FROM collected WHERE session_id = ? AND token = ?)
	`, sessionID, sessionID, token)
	if err != nil {
		return false, fmt.Errorf("remove item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove item: %w", err)
	}
	return n > 0, nil
}

// Items returns the session's collected tokens in collection order.
func (s *Store) Items(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT token FROM collected
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, fmt.Errorf("read items: %w", err)
		}
		tokens = append(tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return tokens, nil
}
