package engine

import (
	"log/slog"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// Result is the outcome of one assumed search.
type Result struct {
	// Checks are the reachable, non-excluded checks in declaration order.
	// Event checks are included.
	Checks []world.CheckID

	// Regions are the reachable regions in the order they were reached.
	Regions []world.RegionID

	// Events are the pseudo-items collected during the search, in
	// collection order.
	Events []item.Item

	// Passes is the number of full passes run, the last of which reached
	// nothing new.
	Passes int

	// Inventory is the working inventory at the fixpoint: the caller's
	// items plus every collected event.
	Inventory *item.Inventory

	reachedRegion []bool
	reachedCheck  []bool
}

// RegionReached reports whether the region was reached.
func (r *Result) RegionReached(id world.RegionID) bool {
	return int(id) < len(r.reachedRegion) && r.reachedRegion[id]
}

// CheckReached reports whether the check is in the reachable set.
func (r *Result) CheckReached(id world.CheckID) bool {
	return int(id) < len(r.reachedCheck) && r.reachedCheck[id]
}

// AssumedSearch computes every check obtainable from inv under s. The
// caller's inventory is not modified; checks may be nil when the world has
// no prefilled events. g and checks are only read.
func AssumedSearch(g *world.Graph, inv *item.Inventory, checks *world.CheckMap, s settings.Settings) *Result {
	res := &Result{
		Inventory:     inv.Clone(),
		reachedRegion: make([]bool, g.NumRegions()),
		reachedCheck:  make([]bool, g.NumChecks()),
	}

	reach := func(id world.RegionID) {
		res.reachedRegion[id] = true
		res.Regions = append(res.Regions, id)
		if checks == nil {
			return
		}
		for _, cid := range g.Region(id).Checks {
			if !g.Check(cid).IsEvent() {
				continue
			}
			if ev, ok := checks.Get(cid); ok {
				res.Inventory.Add(ev)
				res.Events = append(res.Events, ev)
			}
		}
	}

	reach(g.Start())

	for {
		res.Passes++
		grew := false
		// Regions appended during the pass are walked in the same pass.
		for i := 0; i < len(res.Regions); i++ {
			for _, eid := range g.Region(res.Regions[i]).Edges {
				e := g.Edge(eid)
				if res.reachedRegion[e.To] {
					continue
				}
				if logic.Eval(e.Requirement(s.Mode), res.Inventory, s) {
					reach(e.To)
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	for _, cid := range g.Checks() {
		c := g.Check(cid)
		if res.reachedRegion[c.Region] && !g.Excluded(cid, s) {
			res.reachedCheck[cid] = true
			res.Checks = append(res.Checks, cid)
		}
	}

	slog.Debug("assumed search",
		"mode", s.Mode.String(),
		"inventory", inv.Len(),
		"passes", res.Passes,
		"regions", len(res.Regions),
		"checks", len(res.Checks),
		"events", len(res.Events),
	)

	return res
}

// CheckNames returns the names of the reachable checks in declaration
// order.
func (r *Result) CheckNames(g *world.Graph) []string {
	names := make([]string, len(r.Checks))
	for i, id := range r.Checks {
		names[i] = g.Check(id).Name
	}
	return names
}
