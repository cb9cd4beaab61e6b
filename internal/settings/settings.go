// Package settings holds the immutable rule set a logic session runs under:
// the logic mode, independent toggles, and per-area check exclusions.
//
// Settings reach the engine as a wire document. FromWire converts that
// document field by field, once, at the deserialization boundary.
package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Mode is a named logic ruleset tier. Tiers from Normal through GlitchHell
// are ordered: each one admits every connection the previous one does.
type Mode uint8

const (
	Normal Mode = iota
	Hard
	GlitchBasic
	GlitchAdvanced
	GlitchHell
	NoLogic

	numModes
)

// NumModes is the number of logic modes.
const NumModes = int(numModes)

var modeNames = [numModes]string{
	Normal:         "normal",
	Hard:           "hard",
	GlitchBasic:    "glitch_basic",
	GlitchAdvanced: "glitch_advanced",
	GlitchHell:     "glitch_hell",
	NoLogic:        "no_logic",
}

var modeLabels = [numModes]string{
	Normal:         "Normal",
	Hard:           "Hard",
	GlitchBasic:    "Glitched (Basic)",
	GlitchAdvanced: "Glitched (Advanced)",
	GlitchHell:     "Glitched (Hell) - Did you really mean to choose this?",
	NoLogic:        "No Logic",
}

// Modes returns every mode in tier order.
func Modes() []Mode {
	modes := make([]Mode, NumModes)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// String returns the snake_case wire name.
func (m Mode) String() string {
	if int(m) >= NumModes {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Label returns the human-readable name used in session summaries.
func (m Mode) Label() string {
	if int(m) >= NumModes {
		return m.String()
	}
	return modeLabels[m]
}

// ParseMode accepts the wire name in snake_case or CamelCase
// ("glitch_basic", "GlitchBasic"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	key := foldName(s)
	for i, name := range modeNames {
		if foldName(name) == key {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown logic mode %q", s)
}

func foldName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Flag names a boolean toggle that requirement expressions may consult.
type Flag uint8

const (
	SwordlessMode Flag = iota
	Lampless
	SkipTrials
	MinigamesExcluded
	SuperItems
	AssuredWeapon
	BellInShop
	PouchInShop
	SwordInShop
	BootsInShop

	numFlags
)

var flagNames = [numFlags]string{
	SwordlessMode:     "swordless_mode",
	Lampless:          "lampless",
	SkipTrials:        "skip_trials",
	MinigamesExcluded: "minigames_excluded",
	SuperItems:        "super_items",
	AssuredWeapon:     "assured_weapon",
	BellInShop:        "bell_in_shop",
	PouchInShop:       "pouch_in_shop",
	SwordInShop:       "sword_in_shop",
	BootsInShop:       "boots_in_shop",
}

func (f Flag) String() string {
	if f >= numFlags {
		return fmt.Sprintf("flag(%d)", uint8(f))
	}
	return flagNames[f]
}

// ParseFlag resolves a snake_case flag name.
func ParseFlag(name string) (Flag, bool) {
	for i, n := range flagNames {
		if n == name {
			return Flag(i), true
		}
	}
	return 0, false
}

// Flags returns every flag in declaration order.
func Flags() []Flag {
	flags := make([]Flag, numFlags)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

// Settings is an immutable logic configuration. Build one with FromWire or
// by filling the exported fields of a literal; the exclusion set is copied
// on construction and never exposed for mutation.
type Settings struct {
	Mode Mode

	SwordlessMode     bool
	Lampless          bool
	SkipTrials        bool
	MinigamesExcluded bool
	SuperItems        bool

	// Shop guarantees are carried for the host's placement logic and are
	// visible to requirement expressions; the engine does not place items.
	AssuredWeapon bool
	BellInShop    bool
	PouchInShop   bool
	SwordInShop   bool
	BootsInShop   bool

	Exclusions Exclusions
}

// Default returns Normal logic with every toggle off.
func Default() Settings {
	return Settings{Mode: Normal}
}

// Flag returns the value of a toggle.
func (s Settings) Flag(f Flag) bool {
	switch f {
	case SwordlessMode:
		return s.SwordlessMode
	case Lampless:
		return s.Lampless
	case SkipTrials:
		return s.SkipTrials
	case MinigamesExcluded:
		return s.MinigamesExcluded
	case SuperItems:
		return s.SuperItems
	case AssuredWeapon:
		return s.AssuredWeapon
	case BellInShop:
		return s.BellInShop
	case PouchInShop:
		return s.PouchInShop
	case SwordInShop:
		return s.SwordInShop
	case BootsInShop:
		return s.BootsInShop
	default:
		return false
	}
}

// WithFlag returns a copy of s with the toggle set to v.
func (s Settings) WithFlag(f Flag, v bool) Settings {
	switch f {
	case SwordlessMode:
		s.SwordlessMode = v
	case Lampless:
		s.Lampless = v
	case SkipTrials:
		s.SkipTrials = v
	case MinigamesExcluded:
		s.MinigamesExcluded = v
	case SuperItems:
		s.SuperItems = v
	case AssuredWeapon:
		s.AssuredWeapon = v
	case BellInShop:
		s.BellInShop = v
	case PouchInShop:
		s.PouchInShop = v
	case SwordInShop:
		s.SwordInShop = v
	case BootsInShop:
		s.BootsInShop = v
	}
	return s
}

// Exclusions maps an area name to the check names excluded within it.
// The zero value excludes nothing.
type Exclusions struct {
	areas map[string]map[string]struct{}
}

// NewExclusions copies an area -> check names table.
func NewExclusions(table map[string][]string) Exclusions {
	if len(table) == 0 {
		return Exclusions{}
	}
	areas := make(map[string]map[string]struct{}, len(table))
	for area, checks := range table {
		set := make(map[string]struct{}, len(checks))
		for _, c := range checks {
			set[c] = struct{}{}
		}
		areas[area] = set
	}
	return Exclusions{areas: areas}
}

// Excludes reports whether check is excluded within area.
func (e Exclusions) Excludes(area, check string) bool {
	set, ok := e.areas[area]
	if !ok {
		return false
	}
	_, ok = set[check]
	return ok
}

// Len returns the number of excluded checks across all areas.
func (e Exclusions) Len() int {
	n := 0
	for _, set := range e.areas {
		n += len(set)
	}
	return n
}

// Table returns a sorted copy of the exclusion table.
func (e Exclusions) Table() map[string][]string {
	if len(e.areas) == 0 {
		return nil
	}
	table := make(map[string][]string, len(e.areas))
	for area, set := range e.areas {
		checks := make([]string, 0, len(set))
		for c := range set {
			checks = append(checks, c)
		}
		sort.Strings(checks)
		table[area] = checks
	}
	return table
}
