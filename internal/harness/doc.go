// Package harness runs reachability scenarios against the logic engine.
//
// A scenario fixes a settings document and a starting inventory, optionally
// collects more items step by step, and asserts on the reachable checks
// after each step. Scenarios double as executable documentation of the
// world data: a change to a requirement that breaks a routed path shows up
// as a failing scenario.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	world: ../worlds/custom      # optional, defaults to the embedded world
//	settings:
//	  logic: { mode: hard, lampless: true }
//	  exclusions: { "Hyrule": ["Irene"] }
//	inventory: [Bow01, Lamp01]
//	steps:
//	  - collect: [Bombs01]
//	    assertions:
//	      - type: check_reachable
//	        checks: ["Kakariko Jail"]
//	assertions:
//	  - type: check_unreachable
//	    checks: ["[LC] Zelda"]
//
// # Assertion Types
//
//   - check_reachable: every listed check is reachable
//   - check_unreachable: no listed check is reachable
//   - reachable_count: exactly count checks are reachable
//   - region_reached: every listed region was reached
//   - event_collected: every listed event item was collected
//
// # Golden Files
//
// RunWithGolden snapshots the reachable set after every step as canonical
// JSON under testdata/golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
