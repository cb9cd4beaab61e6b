package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// Harness executes scenarios against one engine. The engine's world is
// built once and shared by every scenario run through the harness.
type Harness struct {
	engine *engine.Engine
}

// New creates a harness around eng.
func New(eng *engine.Engine) *Harness {
	return &Harness{engine: eng}
}

// Run executes a scenario with a fresh engine for its world.
func Run(scenario *Scenario) (*Result, error) {
	var opts []engine.EngineOption
	if scenario.World != "" {
		opts = append(opts, engine.WithWorldDir(scenario.World))
	}
	return New(engine.New(opts...)).Run(scenario)
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Convert the settings document and the starting inventory
// 2. Search with the starting inventory (step 0)
// 3. For each step, collect its items, search and evaluate its assertions
// 4. Evaluate the top-level assertions against the final search
//
// An error is returned only when the scenario cannot run at all. Assertion
// failures are reported in the Result.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	s, err := settings.FromWire(scenario.Settings)
	if err != nil {
		return nil, err
	}
	g, _, err := h.engine.World()
	if err != nil {
		return nil, err
	}
	inv, err := item.ParseInventory(scenario.Inventory)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}

	result := NewResult()

	search := func(n int, collected []string) (*engine.Result, StepTrace, error) {
		res, err := h.engine.Search(s, inv)
		if err != nil {
			return nil, StepTrace{}, err
		}
		trace := newStepTrace(g, n, collected, res)
		result.Trace = append(result.Trace, trace)
		return res, trace, nil
	}

	res, trace, err := search(0, scenario.Inventory)
	if err != nil {
		return nil, err
	}

	for i, step := range scenario.Steps {
		for _, tok := range step.Collect {
			it, err := item.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("steps[%d].collect: %w", i, err)
			}
			inv.Add(it)
		}
		res, trace, err = search(i+1, step.Collect)
		if err != nil {
			return nil, err
		}
		evaluateAll(result, fmt.Sprintf("steps[%d].assertions", i), step.Assertions, g, res, trace)
	}

	evaluateAll(result, "assertions", scenario.Assertions, g, res, trace)

	slog.Debug("scenario complete",
		"scenario", scenario.Name,
		"steps", len(result.Trace),
		"pass", result.Pass,
	)
	return result, nil
}

func newStepTrace(g *world.Graph, n int, collected []string, res *engine.Result) StepTrace {
	trace := StepTrace{
		Step:      n,
		Collected: append([]string{}, collected...),
		Reachable: engine.SortFold(res.CheckNames(g)),
		Regions:   make([]string, len(res.Regions)),
		Events:    make([]string, len(res.Events)),
	}
	for i, id := range res.Regions {
		trace.Regions[i] = g.Region(id).Name
	}
	for i, ev := range res.Events {
		trace.Events[i] = ev.String()
	}
	return trace
}

func evaluateAll(result *Result, at string, assertions []Assertion, g *world.Graph, res *engine.Result, trace StepTrace) {
	for i, a := range assertions {
		if err := evaluate(a, g, res, trace); err != nil {
			result.AddError(fmt.Sprintf("%s[%d]: %v", at, i, err))
		}
	}
}
