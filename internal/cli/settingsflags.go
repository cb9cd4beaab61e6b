package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/albwlogic/internal/settings"
)

// SettingsOptions are the flags that select a settings value.
type SettingsOptions struct {
	File  string   // settings document (.yaml, .json or .cue)
	Mode  string   // overrides the document's logic mode
	Flags []string // toggles switched on after loading the document
}

func addSettingsFlags(cmd *cobra.Command, opts *SettingsOptions) {
	cmd.Flags().StringVarP(&opts.File, "settings", "s", "", "settings file (.yaml, .json or .cue)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "logic mode override (normal|hard|glitch_basic|glitch_advanced|glitch_hell|no_logic)")
	cmd.Flags().StringSliceVar(&opts.Flags, "flag", nil, "enable a logic toggle (repeatable), e.g. --flag lampless")
}

// Load resolves the flags into Settings. Without a file the defaults are
// used. Every failure is a *settings.ValidationError.
func (o *SettingsOptions) Load() (settings.Settings, error) {
	s := settings.Default()
	if o.File != "" {
		loaded, err := settings.LoadFile(o.File)
		var verr *settings.ValidationError
		if err != nil && !errors.As(err, &verr) {
			return settings.Settings{}, &settings.ValidationError{Field: o.File, Message: err.Error()}
		}
		if err != nil {
			return settings.Settings{}, err
		}
		s = loaded
	}

	if o.Mode != "" {
		mode, err := settings.ParseMode(o.Mode)
		if err != nil {
			return settings.Settings{}, &settings.ValidationError{Field: "--mode", Message: err.Error()}
		}
		s.Mode = mode
	}

	for _, name := range o.Flags {
		f, ok := settings.ParseFlag(name)
		if !ok {
			return settings.Settings{}, &settings.ValidationError{
				Field:   "--flag",
				Message: fmt.Sprintf("unknown toggle %q", name),
			}
		}
		s = s.WithFlag(f, true)
	}
	return s, nil
}
