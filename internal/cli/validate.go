package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// ModeCompletion is the completion check for one logic mode.
type ModeCompletion struct {
	Mode        string   `json:"mode"`
	Reachable   int      `json:"reachable"`
	Unreachable []string `json:"unreachable,omitempty"`
	Beatable    bool     `json:"beatable"`
}

// ValidationResult holds the completion check for every mode.
type ValidationResult struct {
	Valid    bool             `json:"valid"`
	Hash     string           `json:"hash"`
	Modes    []ModeCompletion `json:"modes"`
	Warnings []world.Warning  `json:"warnings"`
}

// WriteText renders one line per mode and the unreachable checks of any
// failing mode.
func (r ValidationResult) WriteText(w io.Writer) {
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s %s: %s\n", warn.Kind, warn.Subject, warn.Message)
	}
	for _, m := range r.Modes {
		status := "ok"
		if len(m.Unreachable) > 0 || !m.Beatable {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-16s %-4s reachable=%d beatable=%t\n", m.Mode, status, m.Reachable, m.Beatable)
		for _, name := range m.Unreachable {
			fmt.Fprintf(w, "    unreachable: %s\n", name)
		}
	}
	if r.Valid {
		fmt.Fprintln(w, "World is completable in every mode")
	}
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var setOpts SettingsOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the world is completable in every logic mode",
		Long: `Build the world graph and search it with the full progression pool in
every logic mode. The world is valid when every non-excluded check is
reachable and the Triforce event is collected.

Structural warnings (orphan regions, events no check grants, events that
gate their own region) are reported but do not fail validation.

The settings flags select the toggles and exclusions applied to every
mode; the mode itself is iterated.

Exit codes:
  0 - World completable in every mode
  1 - At least one mode leaves checks unreachable
  2 - Command error (world fails to build, invalid settings)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			base, err := setOpts.Load()
			if err != nil {
				return formatter.Fail(err)
			}

			eng := newEngine(rootOpts)
			g, _, err := eng.World()
			if err != nil {
				return formatter.Fail(err)
			}

			result := ValidationResult{Valid: true, Hash: g.Hash(), Warnings: world.Lint(g)}
			for _, mode := range settings.Modes() {
				s := base
				s.Mode = mode
				c, err := eng.CanComplete(s)
				if err != nil {
					return formatter.Fail(err)
				}
				formatter.VerboseLog("%s: %s", mode.String(), c.String())
				result.Modes = append(result.Modes, ModeCompletion{
					Mode:        mode.String(),
					Reachable:   c.Reachable,
					Unreachable: c.Unreachable,
					Beatable:    c.Beatable,
				})
				if !c.Complete() {
					result.Valid = false
				}
			}

			if err := formatter.Success(result); err != nil {
				return err
			}
			if !result.Valid {
				return NewExitError(ExitFailure, "world is not completable in every mode")
			}
			return nil
		},
	}

	addSettingsFlags(cmd, &setOpts)

	return cmd
}
