package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern on the scenario name)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// WriteText renders a line per scenario and a summary.
func (r TestResult) WriteText(w io.Writer) {
	for _, s := range r.Scenarios {
		status := "PASS"
		if !s.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s  %s (%s)\n", status, s.Name, s.File)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "      %s\n", e)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", r.Passed, r.Failed, r.Total)
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios>",
		Short: "Run reachability scenarios",
		Long: `Run scenario files against the logic engine.

The argument is a scenario file or a directory searched recursively for
.yaml and .yml files. Scenarios without a world field use the world
selected by --world.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenario, etc.)

Examples:
  albwlogic test ./scenarios
  albwlogic test ./scenarios --filter "dark_*"
  albwlogic test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern on the name")

	return cmd
}

func runTests(opts *TestOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Filter != "" {
		if _, err := filepath.Match(opts.Filter, ""); err != nil {
			return formatter.Fail(fmt.Errorf("invalid filter %q: %w", opts.Filter, err))
		}
	}

	files, err := harness.Discover(path)
	if err != nil {
		return formatter.Fail(err)
	}

	// One harness per world so each world is built once.
	harnesses := map[string]*harness.Harness{}
	harnessFor := func(worldDir string) *harness.Harness {
		if h, ok := harnesses[worldDir]; ok {
			return h
		}
		var h *harness.Harness
		if worldDir == "" {
			h = harness.New(newEngine(opts.RootOptions))
		} else {
			h = harness.New(engine.New(engine.WithWorldDir(worldDir)))
		}
		harnesses[worldDir] = h
		return h
	}

	result := TestResult{Scenarios: []ScenarioResult{}}
	for _, file := range files {
		scenario, err := harness.LoadScenario(file)
		if err != nil {
			return formatter.Fail(fmt.Errorf("%s: %w", file, err))
		}
		if opts.Filter != "" {
			if ok, _ := filepath.Match(opts.Filter, scenario.Name); !ok {
				continue
			}
		}

		formatter.VerboseLog("Running scenario %s", scenario.Name)
		res, err := harnessFor(scenario.World).Run(scenario)
		if err != nil {
			return formatter.Fail(fmt.Errorf("%s: %w", file, err))
		}

		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:   scenario.Name,
			File:   file,
			Pass:   res.Pass,
			Errors: res.Errors,
		})
		result.Total++
		if res.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if err := formatter.Success(result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}
