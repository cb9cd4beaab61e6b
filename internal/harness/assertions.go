package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/world"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type      string   // Assertion type for categorization
	Expected  string   // Human-readable expected outcome
	Actual    string   // Human-readable actual outcome
	Reachable []string // Reachable checks at the time of the failure
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nReachable checks (%d):\n", len(e.Reachable))
	for _, name := range e.Reachable {
		fmt.Fprintf(&buf, "  %s\n", name)
	}

	return buf.String()
}

func evaluate(a Assertion, g *world.Graph, res *engine.Result, trace StepTrace) error {
	switch a.Type {
	case AssertCheckReachable:
		return assertChecks(a, g, res, trace, true)
	case AssertCheckUnreachable:
		return assertChecks(a, g, res, trace, false)
	case AssertReachableCount:
		return assertReachableCount(a, trace)
	case AssertRegionReached:
		return assertRegionReached(a, g, res, trace)
	case AssertEventCollected:
		return assertEventCollected(a, res, trace)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertChecks verifies every listed check is reachable (want true) or
// unreachable (want false). Unknown check names always fail.
func assertChecks(a Assertion, g *world.Graph, res *engine.Result, trace StepTrace, want bool) error {
	var wrong []string
	for _, name := range a.Checks {
		id, ok := g.CheckByName(name)
		if !ok {
			return fmt.Errorf("unknown check %q", name)
		}
		if res.CheckReached(id) != want {
			wrong = append(wrong, name)
		}
	}
	if len(wrong) == 0 {
		return nil
	}

	expected, actual := "reachable", "unreachable"
	if !want {
		expected, actual = actual, expected
	}
	return &AssertionError{
		Type:      a.Type,
		Expected:  fmt.Sprintf("%s %s", strings.Join(a.Checks, ", "), expected),
		Actual:    fmt.Sprintf("%s %s", strings.Join(wrong, ", "), actual),
		Reachable: trace.Reachable,
	}
}

func assertReachableCount(a Assertion, trace StepTrace) error {
	if len(trace.Reachable) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:      a.Type,
		Expected:  fmt.Sprintf("%d reachable checks", a.Count),
		Actual:    fmt.Sprintf("%d reachable checks", len(trace.Reachable)),
		Reachable: trace.Reachable,
	}
}

func assertRegionReached(a Assertion, g *world.Graph, res *engine.Result, trace StepTrace) error {
	var missing []string
	for _, name := range a.Regions {
		id, ok := g.RegionByName(name)
		if !ok {
			return fmt.Errorf("unknown region %q", name)
		}
		if !res.RegionReached(id) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &AssertionError{
		Type:      a.Type,
		Expected:  fmt.Sprintf("regions %s reached", strings.Join(a.Regions, ", ")),
		Actual:    fmt.Sprintf("%s not reached (reached: %s)", strings.Join(missing, ", "), strings.Join(trace.Regions, ", ")),
		Reachable: trace.Reachable,
	}
}

func assertEventCollected(a Assertion, res *engine.Result, trace StepTrace) error {
	var missing []string
	for _, tok := range a.Items {
		it, err := item.Parse(tok)
		if err != nil {
			return err
		}
		if !collected(res.Events, it) {
			missing = append(missing, tok)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &AssertionError{
		Type:      a.Type,
		Expected:  fmt.Sprintf("events %s collected", strings.Join(a.Items, ", ")),
		Actual:    fmt.Sprintf("%s not collected (collected: %s)", strings.Join(missing, ", "), strings.Join(trace.Events, ", ")),
		Reachable: trace.Reachable,
	}
}

func collected(events []item.Item, it item.Item) bool {
	for _, ev := range events {
		if ev == it {
			return true
		}
	}
	return false
}
