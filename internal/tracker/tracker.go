package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/store"
)

// ErrNotCollected is returned by Drop when the session holds no copy of
// the token.
var ErrNotCollected = errors.New("item not collected")

// IDGenerator produces session ids.
type IDGenerator interface {
	NewID() string
}

type uuidV7 struct{}

func (uuidV7) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Service ties a session store to an engine.
type Service struct {
	store  *store.Store
	engine *engine.Engine
	ids    IDGenerator
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator replaces the default UUIDv7 session ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) {
		s.ids = g
	}
}

// New creates a Service.
func New(st *store.Store, eng *engine.Engine, opts ...Option) *Service {
	s := &Service{store: st, engine: eng, ids: uuidV7{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session is a decoded tracker session.
type Session struct {
	ID           string
	Label        string
	Settings     settings.Settings
	SettingsHash string
	Seed         uint64
	WorldHash    string
	Items        []string
}

// Start creates a session for the given settings and seed.
func (s *Service) Start(ctx context.Context, set settings.Settings, seed uint64, label string) (Session, error) {
	g, _, err := s.engine.World()
	if err != nil {
		return Session{}, err
	}

	doc, err := json.Marshal(set.ToWire())
	if err != nil {
		return Session{}, fmt.Errorf("encode settings: %w", err)
	}

	sess := Session{
		ID:           s.ids.NewID(),
		Label:        label,
		Settings:     set,
		SettingsHash: set.Fingerprint(),
		Seed:         seed,
		WorldHash:    g.Hash(),
	}
	if _, err := s.store.CreateSession(ctx, store.Session{
		ID:           sess.ID,
		Label:        sess.Label,
		Settings:     string(doc),
		SettingsHash: sess.SettingsHash,
		Seed:         sess.Seed,
		WorldHash:    sess.WorldHash,
	}); err != nil {
		return Session{}, err
	}

	slog.Info("tracker session started",
		"session", sess.ID,
		"seed", seed,
		"settings_hash", sess.SettingsHash,
		"world_hash", sess.WorldHash,
	)
	return sess, nil
}

// Load reads a session and its collected items.
func (s *Service) Load(ctx context.Context, id string) (Session, error) {
	row, err := s.store.ReadSession(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return s.decode(ctx, row)
}

func (s *Service) decode(ctx context.Context, row store.Session) (Session, error) {
	set, err := settings.LoadJSON([]byte(row.Settings))
	if err != nil {
		return Session{}, fmt.Errorf("session %q: %w", row.ID, err)
	}
	items, err := s.store.Items(ctx, row.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:           row.ID,
		Label:        row.Label,
		Settings:     set,
		SettingsHash: row.SettingsHash,
		Seed:         row.Seed,
		WorldHash:    row.WorldHash,
		Items:        items,
	}, nil
}

// Collect records a found item. The token must be in the item registry.
func (s *Service) Collect(ctx context.Context, id, token string) error {
	if _, err := item.Parse(token); err != nil {
		return err
	}
	if _, err := s.store.AppendItem(ctx, id, token); err != nil {
		return err
	}
	slog.Debug("item collected", "session", id, "token", token)
	return nil
}

// Drop removes the most recently collected copy of token.
func (s *Service) Drop(ctx context.Context, id, token string) error {
	if _, err := s.store.ReadSession(ctx, id); err != nil {
		return err
	}
	removed, err := s.store.RemoveItem(ctx, id, token)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("drop %q from %q: %w", token, id, ErrNotCollected)
	}
	slog.Debug("item dropped", "session", id, "token", token)
	return nil
}

// Available returns the checks reachable with the session's items, sorted
// for display.
func (s *Service) Available(ctx context.Context, id string) ([]string, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.warnWorldDrift(sess)
	return s.engine.QueryReachable(sess.Settings, sess.Items)
}

// Pools returns the session's progression and trash pools.
func (s *Service) Pools(ctx context.Context, id string) (progression, trash []string, err error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return s.engine.QueryPools(sess.Settings, sess.Seed)
}

// List returns every session in creation order.
func (s *Service) List(ctx context.Context) ([]Session, error) {
	rows, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Session, 0, len(rows))
	for _, row := range rows {
		sess, err := s.decode(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteSession(ctx, id)
}

// warnWorldDrift logs when the session was started against a different
// world than the one now loaded. Queries still run against the current
// world.
func (s *Service) warnWorldDrift(sess Session) {
	g, _, err := s.engine.World()
	if err != nil || g.Hash() == sess.WorldHash {
		return
	}
	slog.Warn("world changed since session start",
		"session", sess.ID,
		"session_world", sess.WorldHash,
		"current_world", g.Hash(),
	)
}
