// Package testutil provides fixture worlds and deterministic helpers shared
// by package tests.
package testutil

import (
	"testing"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// Fixture item and check names used by the small worlds below.
const (
	// ItemX gates the edge of the two-region world.
	ItemX = item.Bow01
	// EventY is the pseudo-item granted inside the event-gated world.
	EventY = item.OpenSanctuaryDoors
)

// TwoRegion is the smallest gated world: A (start) holds C0, B holds C1,
// and A -> B requires ItemX.
func TwoRegion() *world.Definition {
	return &world.Definition{
		Start: "A",
		Regions: []world.RegionDef{
			{
				Name:   "A",
				Area:   "Field",
				Checks: []world.CheckDef{{Name: "C0"}},
				Paths:  []world.PathDef{Path("B", settings.Normal, logic.Has(ItemX, 1))},
			},
			{
				Name:   "B",
				Area:   "Field",
				Checks: []world.CheckDef{{Name: "C1"}},
			},
		},
	}
}

// EventGated holds an event check in the start region granting EventY; the
// only edge out of A requires EventY. B grants a second event that opens C.
func EventGated() *world.Definition {
	return &world.Definition{
		Start: "A",
		Regions: []world.RegionDef{
			{
				Name: "A",
				Area: "Field",
				Checks: []world.CheckDef{
					{Name: "Lever", Event: EventY},
					{Name: "C0"},
				},
				Paths: []world.PathDef{Path("B", settings.Normal, logic.Has(EventY, 1))},
			},
			{
				Name: "B",
				Area: "Field",
				Checks: []world.CheckDef{
					{Name: "C1"},
					{Name: "Gate", Event: item.AccessMilkBar},
				},
				Paths: []world.PathDef{Path("C", settings.Normal, logic.Has(item.AccessMilkBar, 1))},
			},
			{
				Name:   "C",
				Area:   "Castle",
				Checks: []world.CheckDef{{Name: "C2", Minigame: true}},
			},
		},
	}
}

// Tiered is a start region with one edge per glitch tier:
// A -> Hard opens in Hard with Bombs01, A -> Glitch opens in GlitchBasic
// with PegasusBoots, and A -> Sword needs swordless_mode or a sword.
func Tiered() *world.Definition {
	return &world.Definition{
		Start: "A",
		Regions: []world.RegionDef{
			{
				Name: "A",
				Area: "Field",
				Paths: []world.PathDef{
					Path("Hard", settings.Hard, logic.Has(item.Bombs01, 1)),
					Path("Glitch", settings.GlitchBasic, logic.Has(item.PegasusBoots, 1)),
					Path("Sword", settings.Normal, logic.MustParse("swordless_mode || Sword")),
				},
			},
			{Name: "Hard", Area: "Field", Checks: []world.CheckDef{{Name: "Hard Chest"}}},
			{Name: "Glitch", Area: "Field", Checks: []world.CheckDef{{Name: "Glitch Chest"}}},
			{Name: "Sword", Area: "Field", Checks: []world.CheckDef{{Name: "Sword Chest"}}},
		},
	}
}

// Path builds a path with a single requirement introduced at mode.
func Path(to string, mode settings.Mode, req logic.Expr) world.PathDef {
	return world.PathDef{
		To:           to,
		Alternatives: []world.Alternative{{Mode: mode, Requirement: req}},
	}
}

// MustGraph builds def or fails the test.
func MustGraph(t testing.TB, def *world.Definition) *world.Graph {
	t.Helper()
	g, err := world.BuildWorldGraph(def)
	if err != nil {
		t.Fatalf("build world graph: %v", err)
	}
	return g
}

// MustCheckMap prefills g or fails the test.
func MustCheckMap(t testing.TB, g *world.Graph) *world.CheckMap {
	t.Helper()
	m, err := world.PrefillCheckMap(g)
	if err != nil {
		t.Fatalf("prefill check map: %v", err)
	}
	return m
}

// Inventory resolves tokens or fails the test.
func Inventory(t testing.TB, tokens ...string) *item.Inventory {
	t.Helper()
	inv, err := item.ParseInventory(tokens)
	if err != nil {
		t.Fatalf("parse inventory: %v", err)
	}
	return inv
}
