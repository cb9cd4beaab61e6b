package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/albwlogic/internal/store"
	"github.com/roach88/albwlogic/internal/tracker"
)

// SessionInfo is the CLI view of a tracker session.
type SessionInfo struct {
	ID           string   `json:"id"`
	Label        string   `json:"label,omitempty"`
	Mode         string   `json:"mode"`
	Seed         uint64   `json:"seed"`
	SettingsHash string   `json:"settings_hash"`
	Items        []string `json:"items"`
}

// WriteText renders the session on one line plus its items.
func (s SessionInfo) WriteText(w io.Writer) {
	fmt.Fprintf(w, "%s  mode=%s seed=%d items=%d", s.ID, s.Mode, s.Seed, len(s.Items))
	if s.Label != "" {
		fmt.Fprintf(w, "  %q", s.Label)
	}
	fmt.Fprintln(w)
}

// SessionList is the output of tracker list.
type SessionList []SessionInfo

// WriteText renders one session per line.
func (l SessionList) WriteText(w io.Writer) {
	if len(l) == 0 {
		fmt.Fprintln(w, "No sessions")
		return
	}
	for _, s := range l {
		s.WriteText(w)
	}
}

// CheckList is the output of tracker checks.
type CheckList struct {
	Session string   `json:"session"`
	Checks  []string `json:"checks"`
}

// WriteText renders one check name per line.
func (c CheckList) WriteText(w io.Writer) {
	for _, name := range c.Checks {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintf(w, "\n%d reachable checks\n", len(c.Checks))
}

func sessionInfo(s tracker.Session) SessionInfo {
	items := s.Items
	if items == nil {
		items = []string{}
	}
	return SessionInfo{
		ID:           s.ID,
		Label:        s.Label,
		Mode:         s.Settings.Mode.String(),
		Seed:         s.Seed,
		SettingsHash: s.SettingsHash,
		Items:        items,
	}
}

// NewTrackerCommand creates the tracker command group.
func NewTrackerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Track a live run",
		Long: `Persist a run's settings and the items found so far, and list the checks
they make reachable. Sessions are stored in the SQLite database named by
--db.`,
	}

	cmd.AddCommand(newTrackerNewCommand(rootOpts))
	cmd.AddCommand(newTrackerCollectCommand(rootOpts))
	cmd.AddCommand(newTrackerDropCommand(rootOpts))
	cmd.AddCommand(newTrackerChecksCommand(rootOpts))
	cmd.AddCommand(newTrackerListCommand(rootOpts))
	cmd.AddCommand(newTrackerDeleteCommand(rootOpts))

	return cmd
}

// withTracker opens the store, runs fn with a service and closes the store.
func withTracker(rootOpts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error) error {
	formatter := newFormatter(rootOpts, cmd)

	st, err := store.Open(rootOpts.DB)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	formatter.VerboseLog("Using tracker database %s", rootOpts.DB)
	return fn(cmd.Context(), tracker.New(st, newEngine(rootOpts)), formatter)
}

func newTrackerNewCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		setOpts SettingsOptions
		seed    uint64
		label   string
	)

	cmd := &cobra.Command{
		Use:           "new",
		Short:         "Start a tracker session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				s, err := setOpts.Load()
				if err != nil {
					return f.Fail(err)
				}
				sess, err := svc.Start(ctx, s, seed, label)
				if err != nil {
					return f.Fail(err)
				}
				return f.Success(sessionInfo(sess))
			})
		},
	}

	addSettingsFlags(cmd, &setOpts)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed")
	cmd.Flags().StringVar(&label, "label", "", "free-form session label")

	return cmd
}

func newTrackerCollectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "collect <session-id> <item-token>...",
		Short:         "Record found items",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				for _, tok := range args[1:] {
					if err := svc.Collect(ctx, args[0], tok); err != nil {
						return f.Fail(err)
					}
				}
				sess, err := svc.Load(ctx, args[0])
				if err != nil {
					return f.Fail(err)
				}
				return f.Success(sessionInfo(sess))
			})
		},
	}
}

func newTrackerDropCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "drop <session-id> <item-token>...",
		Short:         "Remove items recorded by mistake",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				for _, tok := range args[1:] {
					if err := svc.Drop(ctx, args[0], tok); err != nil {
						return f.Fail(err)
					}
				}
				sess, err := svc.Load(ctx, args[0])
				if err != nil {
					return f.Fail(err)
				}
				return f.Success(sessionInfo(sess))
			})
		},
	}
}

func newTrackerChecksCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "checks <session-id>",
		Short:         "List the checks reachable with the collected items",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				checks, err := svc.Available(ctx, args[0])
				if err != nil {
					return f.Fail(err)
				}
				return f.Success(CheckList{Session: args[0], Checks: checks})
			})
		},
	}
}

func newTrackerListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List tracker sessions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				sessions, err := svc.List(ctx)
				if err != nil {
					return f.Fail(err)
				}
				out := make(SessionList, 0, len(sessions))
				for _, s := range sessions {
					out = append(out, sessionInfo(s))
				}
				return f.Success(out)
			})
		},
	}
}

func newTrackerDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <session-id>",
		Short:         "Delete a tracker session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, svc *tracker.Service, f *OutputFormatter) error {
				if err := svc.Delete(ctx, args[0]); err != nil {
					return f.Fail(err)
				}
				return f.Success(fmt.Sprintf("Deleted session %s", args[0]))
			})
		},
	}
}
