package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/albwlogic/internal/settings"
)

// Scenario defines a reachability scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// World is an optional directory of CUE world files. Relative paths
	// are resolved against the scenario file. Empty means the embedded
	// world.
	World string `yaml:"world,omitempty"`

	// Settings is the settings document the scenario runs under.
	Settings settings.Wire `yaml:"settings"`

	// Inventory lists the item tokens held before the first step.
	Inventory []string `yaml:"inventory,omitempty"`

	// Steps collect more items and assert after each collection.
	Steps []Step `yaml:"steps,omitempty"`

	// Assertions run against the final inventory.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step adds items to the inventory and asserts on the new reachable set.
type Step struct {
	Collect    []string    `yaml:"collect"`
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a search result.
type Assertion struct {
	// Type selects the assertion; see the Assert* constants.
	Type string `yaml:"type"`

	// Checks are check names (check_reachable, check_unreachable).
	Checks []string `yaml:"checks,omitempty"`

	// Regions are region names (region_reached).
	Regions []string `yaml:"regions,omitempty"`

	// Items are event item tokens (event_collected).
	Items []string `yaml:"items,omitempty"`

	// Count is the exact reachable count (reachable_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertCheckReachable   = "check_reachable"
	AssertCheckUnreachable = "check_unreachable"
	AssertReachableCount   = "reachable_count"
	AssertRegionReached    = "region_reached"
	AssertEventCollected   = "event_collected"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.World != "" && !filepath.IsAbs(scenario.World) {
		scenario.World = filepath.Join(filepath.Dir(path), scenario.World)
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML. World paths are left as written.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	total := len(s.Assertions)
	for i, step := range s.Steps {
		if len(step.Collect) == 0 {
			return fmt.Errorf("steps[%d]: collect list is required and must be non-empty", i)
		}
		for j, a := range step.Assertions {
			if err := validateAssertion(fmt.Sprintf("steps[%d].assertions[%d]", i, j), &a); err != nil {
				return err
			}
		}
		total += len(step.Assertions)
	}
	if total == 0 {
		return fmt.Errorf("at least one assertion is required")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(fmt.Sprintf("assertions[%d]", i), &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(at string, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("%s: type is required", at)
	case AssertCheckReachable, AssertCheckUnreachable:
		if len(a.Checks) == 0 {
			return fmt.Errorf("%s: checks list is required for %s", at, a.Type)
		}
	case AssertRegionReached:
		if len(a.Regions) == 0 {
			return fmt.Errorf("%s: regions list is required for %s", at, a.Type)
		}
	case AssertEventCollected:
		if len(a.Items) == 0 {
			return fmt.Errorf("%s: items list is required for %s", at, a.Type)
		}
	case AssertReachableCount:
		if a.Count < 0 {
			return fmt.Errorf("%s: count must be non-negative for %s", at, a.Type)
		}
	default:
		return fmt.Errorf("%s: unknown assertion type %q", at, a.Type)
	}
	return nil
}
