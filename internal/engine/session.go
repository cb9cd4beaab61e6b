package engine

import (
	"log/slog"

	"github.com/roach88/albwlogic/internal/settings"
)

// Session binds a settings value and a seed, the handle a host keeps for
// one randomizer run.
type Session struct {
	engine   *Engine
	settings settings.Settings
	seed     uint64
}

// NewSession creates a session and logs its settings summary.
func (e *Engine) NewSession(s settings.Settings, seed uint64) *Session {
	args := []any{"seed", seed, "settings_hash", s.Fingerprint()}
	for _, a := range s.LogAttrs() {
		args = append(args, a)
	}
	slog.Info("session created", args...)

	return &Session{engine: e, settings: s, seed: seed}
}

// Settings returns the session settings.
func (s *Session) Settings() settings.Settings { return s.settings }

// Seed returns the session seed.
func (s *Session) Seed() uint64 { return s.seed }

// ProgressionItemNames returns the progression pool sorted for display.
func (s *Session) ProgressionItemNames() ([]string, error) {
	prog, _, err := s.engine.QueryPools(s.settings, s.seed)
	return prog, err
}

// TrashItemNames returns the trash pool sorted for display.
func (s *Session) TrashItemNames() ([]string, error) {
	_, trash, err := s.engine.QueryPools(s.settings, s.seed)
	return trash, err
}

// AvailableChecks returns the checks reachable with the obtained items.
func (s *Session) AvailableChecks(tokens []string) ([]string, error) {
	return s.engine.QueryReachable(s.settings, tokens)
}

// CanComplete reports whether the session's world can be completed.
func (s *Session) CanComplete() (*Completion, error) {
	return s.engine.CanComplete(s.settings)
}
