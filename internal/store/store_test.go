package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpen_AppliesPragmas(t *testing.T) {
	st := createTestStore(t)

	tests := []struct {
		name, expected string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"},
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
		{"user_version", "1"},
	}
	for _, tt := range tests {
		if err := st.verifyPragma(tt.name, tt.expected); err != nil {
			t.Error(err)
		}
	}
}

func TestVerifyPragma_Mismatch(t *testing.T) {
	st := createTestStore(t)

	if err := st.verifyPragma("journal_mode", "delete"); err == nil {
		t.Fatal("verifyPragma() should report a mismatched value")
	}
	if err := st.verifyPragma("journal_mode", "WAL"); err != nil {
		t.Fatalf("verifyPragma() should ignore case: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	createTestSession(t, st1, "s1")
	st1.Close()

	st2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer st2.Close()

	if _, err := st2.ReadSession(context.Background(), "s1"); err != nil {
		t.Fatalf("session lost across reopen: %v", err)
	}
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := st.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
	st.Close()

	if _, err := Open(path); err == nil {
		t.Fatal("Open() should reject a newer schema version")
	}
}

func TestClose_NilDB(t *testing.T) {
	var st Store
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestSessions_CreateReadList(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	a := createTestSession(t, st, "b-session")
	b := createTestSession(t, st, "a-session")

	if a.Seq != 1 || b.Seq != 2 {
		t.Fatalf("seq = %d, %d, want 1, 2", a.Seq, b.Seq)
	}

	got, err := st.ReadSession(ctx, "a-session")
	if err != nil {
		t.Fatalf("ReadSession() error = %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("ReadSession() = %+v, want %+v", got, b)
	}

	list, err := st.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != "b-session" || list[1].ID != "a-session" {
		t.Errorf("ListSessions() order = %+v, want creation order", list)
	}
}

func TestSessions_SeedRoundTripsHighBit(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	sess := Session{ID: "s", Settings: "{}", Seed: 1<<63 + 7}
	if _, err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	got, err := st.ReadSession(ctx, "s")
	if err != nil {
		t.Fatalf("ReadSession() error = %v", err)
	}
	if got.Seed != sess.Seed {
		t.Errorf("Seed = %d, want %d", got.Seed, sess.Seed)
	}
}

func TestSessions_Duplicate(t *testing.T) {
	st := createTestStore(t)
	createTestSession(t, st, "s1")

	_, err := st.CreateSession(context.Background(), Session{ID: "s1", Settings: "{}"})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("CreateSession() error = %v, want ErrExists", err)
	}
}

func TestSessions_NotFound(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	if _, err := st.ReadSession(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadSession() error = %v, want ErrNotFound", err)
	}
	if err := st.DeleteSession(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSession() error = %v, want ErrNotFound", err)
	}
	if _, err := st.AppendItem(ctx, "missing", "Bow01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendItem() error = %v, want ErrNotFound", err)
	}
}

func TestItems_AppendRemove(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()
	createTestSession(t, st, "s1")

	for _, tok := range []string{"Bow01", "Sword01", "Bow01", "Lamp01"} {
		if _, err := st.AppendItem(ctx, "s1", tok); err != nil {
			t.Fatalf("AppendItem(%q) error = %v", tok, err)
		}
	}

	removed, err := st.RemoveItem(ctx, "s1", "Bow01")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if !removed {
		t.Fatal("RemoveItem() = false, want true")
	}

	got, err := st.Items(ctx, "s1")
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	want := []string{"Bow01", "Sword01", "Lamp01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}

	removed, err = st.RemoveItem(ctx, "s1", "Hookshot01")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if removed {
		t.Error("RemoveItem() of absent token = true")
	}
}

func TestItems_SeqContinuesAfterRemove(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()
	createTestSession(t, st, "s1")

	st.AppendItem(ctx, "s1", "Bow01")
	st.AppendItem(ctx, "s1", "Lamp01")
	st.RemoveItem(ctx, "s1", "Bow01")

	seq, err := st.AppendItem(ctx, "s1", "Bow01")
	if err != nil {
		t.Fatalf("AppendItem() error = %v", err)
	}
	if seq != 3 {
		t.Errorf("seq = %d, want 3", seq)
	}
	got, _ := st.Items(ctx, "s1")
	if want := []string{"Lamp01", "Bow01"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestDeleteSession_Cascades(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()
	createTestSession(t, st, "s1")
	st.AppendItem(ctx, "s1", "Bow01")

	if err := st.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}

	var n int
	if err := st.db.QueryRow("SELECT COUNT(*) FROM collected").Scan(&n); err != nil {
		t.Fatalf("count collected: %v", err)
	}
	if n != 0 {
		t.Errorf("collected rows = %d after delete, want 0", n)
	}
}
