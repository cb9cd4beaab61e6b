package settings

import (
	"fmt"
	"log/slog"

	"github.com/roach88/albwlogic/internal/canonical"
)

// Wire is the serialized settings document exchanged with the host.
type Wire struct {
	Logic      LogicWire           `json:"logic" yaml:"logic"`
	Exclusions map[string][]string `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
}

// LogicWire is the logic block of a wire settings document.
type LogicWire struct {
	Mode              string `json:"mode" yaml:"mode"`
	SwordlessMode     bool   `json:"swordless_mode" yaml:"swordless_mode"`
	Lampless          bool   `json:"lampless" yaml:"lampless"`
	SkipTrials        bool   `json:"skip_trials" yaml:"skip_trials"`
	MinigamesExcluded bool   `json:"minigames_excluded" yaml:"minigames_excluded"`
	SuperItems        bool   `json:"super_items" yaml:"super_items"`
	AssuredWeapon     bool   `json:"assured_weapon" yaml:"assured_weapon"`
	BellInShop        bool   `json:"bell_in_shop" yaml:"bell_in_shop"`
	PouchInShop       bool   `json:"pouch_in_shop" yaml:"pouch_in_shop"`
	SwordInShop       bool   `json:"sword_in_shop" yaml:"sword_in_shop"`
	BootsInShop       bool   `json:"boots_in_shop" yaml:"boots_in_shop"`
}

// ValidationError reports a wire field that does not convert.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid settings: %s: %s", e.Field, e.Message)
}

// FromWire converts a wire document into Settings. Every field is mapped
// explicitly; an empty mode means Normal.
func FromWire(w Wire) (Settings, error) {
	s := Settings{Mode: Normal}
	if w.Logic.Mode != "" {
		mode, err := ParseMode(w.Logic.Mode)
		if err != nil {
			return Settings{}, &ValidationError{Field: "logic.mode", Message: err.Error()}
		}
		s.Mode = mode
	}

	s.SwordlessMode = w.Logic.SwordlessMode
	s.Lampless = w.Logic.Lampless
	s.SkipTrials = w.Logic.SkipTrials
	s.MinigamesExcluded = w.Logic.MinigamesExcluded
	s.SuperItems = w.Logic.SuperItems
	s.AssuredWeapon = w.Logic.AssuredWeapon
	s.BellInShop = w.Logic.BellInShop
	s.PouchInShop = w.Logic.PouchInShop
	s.SwordInShop = w.Logic.SwordInShop
	s.BootsInShop = w.Logic.BootsInShop

	for area, checks := range w.Exclusions {
		if area == "" {
			return Settings{}, &ValidationError{Field: "exclusions", Message: "area name must not be empty"}
		}
		for i, c := range checks {
			if c == "" {
				return Settings{}, &ValidationError{
					Field:   fmt.Sprintf("exclusions.%s[%d]", area, i),
					Message: "check name must not be empty",
				}
			}
		}
	}
	s.Exclusions = NewExclusions(w.Exclusions)

	return s, nil
}

// ToWire is the inverse of FromWire. Exclusion lists come back sorted.
func (s Settings) ToWire() Wire {
	return Wire{
		Logic: LogicWire{
			Mode:              s.Mode.String(),
			SwordlessMode:     s.SwordlessMode,
			Lampless:          s.Lampless,
			SkipTrials:        s.SkipTrials,
			MinigamesExcluded: s.MinigamesExcluded,
			SuperItems:        s.SuperItems,
			AssuredWeapon:     s.AssuredWeapon,
			BellInShop:        s.BellInShop,
			PouchInShop:       s.PouchInShop,
			SwordInShop:       s.SwordInShop,
			BootsInShop:       s.BootsInShop,
		},
		Exclusions: s.Exclusions.Table(),
	}
}

// canonicalForm is the map hashed by Fingerprint.
func (s Settings) canonicalForm() map[string]any {
	logic := map[string]any{"mode": s.Mode.String()}
	for _, f := range Flags() {
		logic[f.String()] = s.Flag(f)
	}
	form := map[string]any{"logic": logic}
	if table := s.Exclusions.Table(); table != nil {
		form["exclusions"] = table
	}
	return form
}

// Fingerprint returns a stable content hash of the settings.
func (s Settings) Fingerprint() string {
	h, err := canonical.Hash(canonical.DomainSettings, s.canonicalForm())
	if err != nil {
		// canonicalForm only holds strings, bools and string lists.
		panic(fmt.Sprintf("settings: fingerprint: %v", err))
	}
	return h
}

// LogAttrs returns the session summary as slog attributes.
func (s Settings) LogAttrs() []slog.Attr {
	superItems := "Not Included"
	if s.SuperItems {
		superItems = "Included"
	}
	trials := "Normal"
	if s.SkipTrials {
		trials = "Skipped"
	}
	darkRooms := "Lamp Required"
	if s.Lampless {
		darkRooms = "Lamp Not Required"
	}
	swords := "Normal"
	if s.SwordlessMode {
		swords = "Swordless Mode - NO SWORDS"
	}
	return []slog.Attr{
		slog.String("logic", s.Mode.Label()),
		slog.String("super_items", superItems),
		slog.String("trials", trials),
		slog.String("dark_rooms", darkRooms),
		slog.String("swords", swords),
		slog.Int("exclusions", s.Exclusions.Len()),
	}
}
