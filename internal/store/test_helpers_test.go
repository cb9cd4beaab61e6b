package store

import (
	"context"
	"path/filepath"
	"testing"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func createTestSession(t *testing.T, st *Store, id string) Session {
	t.Helper()
	sess := Session{
		ID:           id,
		Label:        "label-" + id,
		Settings:     `{"logic":{"mode":"normal"}}`,
		SettingsHash: "sha256:settings",
		Seed:         42,
		WorldHash:    "sha256:world",
	}
	seq, err := st.CreateSession(context.Background(), sess)
	if err != nil {
		t.Fatalf("CreateSession(%q) error = %v", id, err)
	}
	sess.Seq = seq
	return sess
}
