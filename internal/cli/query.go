package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// PoolsResult is the output of the pools command.
type PoolsResult struct {
	Seed        uint64   `json:"seed"`
	Progression []string `json:"progression"`
	Trash       []string `json:"trash"`
}

// WriteText renders both pools with a header each.
func (r PoolsResult) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Progression (%d):\n", len(r.Progression))
	for _, name := range r.Progression {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "Trash (%d):\n", len(r.Trash))
	for _, name := range r.Trash {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// NewPoolsCommand creates the pools command.
func NewPoolsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		setOpts SettingsOptions
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Build the progression and trash item pools",
		Long: `Build the item pools for a settings value and seed.

The progression pool is fixed by the settings. The trash pool is shuffled
with the seed and sized so that both pools fill every item slot.

Examples:
  albwlogic pools --settings run.yaml --seed 12345
  albwlogic pools --mode hard --flag swordless_mode --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := setOpts.Load()
			if err != nil {
				return formatter.Fail(err)
			}
			prog, trash, err := newEngine(rootOpts).QueryPools(s, seed)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(PoolsResult{Seed: seed, Progression: prog, Trash: trash})
		},
	}

	addSettingsFlags(cmd, &setOpts)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed")

	return cmd
}

// ReachableResult is the output of the reachable command.
type ReachableResult struct {
	Inventory []string `json:"inventory"`
	Checks    []string `json:"checks"`
}

// WriteText renders one check name per line.
func (r ReachableResult) WriteText(w io.Writer) {
	for _, name := range r.Checks {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintf(w, "\n%d reachable checks\n", len(r.Checks))
}

// NewReachableCommand creates the reachable command.
func NewReachableCommand(rootOpts *RootOptions) *cobra.Command {
	var setOpts SettingsOptions

	cmd := &cobra.Command{
		Use:   "reachable [item-token...]",
		Short: "List the checks reachable with the given items",
		Long: `Run an assumed search with the given item tokens and list every
reachable, non-excluded check, sorted for display.

Examples:
  albwlogic reachable Bow01 Lamp01 PegasusBoots
  albwlogic reachable --settings run.cue --flag lampless Hookshot01`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := setOpts.Load()
			if err != nil {
				return formatter.Fail(err)
			}
			checks, err := newEngine(rootOpts).QueryReachable(s, args)
			if err != nil {
				return formatter.Fail(err)
			}
			inv := args
			if inv == nil {
				inv = []string{}
			}
			return formatter.Success(ReachableResult{Inventory: inv, Checks: checks})
		},
	}

	addSettingsFlags(cmd, &setOpts)

	return cmd
}
