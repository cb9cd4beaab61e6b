package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/albwlogic/internal/canonical"
)

// TraceSnapshot captures the per-step reachable sets of a scenario run.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []StepTrace
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for
// canonical JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	steps := make([]any, len(s.Trace))
	for i, st := range s.Trace {
		steps[i] = map[string]any{
			"step":      st.Step,
			"collected": st.Collected,
			"reachable": st.Reachable,
			"regions":   st.Regions,
			"events":    st.Events,
		}
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         steps,
	}
}

// RunWithGolden executes a scenario with h and compares the trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check Pass. Returns an error if
// the scenario cannot run.
func (h *Harness) RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := h.Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares the given result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{ScenarioName: scenarioName, Trace: result.Trace}
	data, err := canonical.Marshal(snapshot.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
