package world

import (
	"fmt"

	"github.com/roach88/albwlogic/internal/canonical"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/settings"
)

// RegionID, CheckID and EdgeID are stable indexes into a Graph's arenas.
type (
	RegionID int32
	CheckID  int32
	EdgeID   int32
)

// Region is a node of the world graph.
type Region struct {
	ID     RegionID
	Name   string
	Area   string
	Checks []CheckID
	Edges  []EdgeID
}

// Check is a location yielding one item.
type Check struct {
	ID       CheckID
	Name     string
	Region   RegionID
	Event    item.Item
	Minigame bool
}

// IsEvent reports whether the check yields an event pseudo-item.
func (c *Check) IsEvent() bool {
	return c.Event != item.None
}

// Edge is a directed connection between two regions.
type Edge struct {
	ID   EdgeID
	From RegionID
	To   RegionID

	// requirements holds the effective requirement for each mode. A False
	// requirement means the edge does not exist in that mode.
	requirements [settings.NumModes]logic.Expr
}

// Requirement returns the requirement that opens the edge under mode.
func (e *Edge) Requirement(mode settings.Mode) logic.Expr {
	if int(mode) >= settings.NumModes {
		return logic.False()
	}
	return e.requirements[mode]
}

// Exists reports whether the edge is part of the graph under mode.
func (e *Edge) Exists(mode settings.Mode) bool {
	return e.Requirement(mode).Kind != logic.KindFalse
}

// Graph is an immutable world graph. It is safe for concurrent readers.
type Graph struct {
	start   RegionID
	regions []Region
	checks  []Check
	edges   []Edge

	regionByName map[string]RegionID
	checkByName  map[string]CheckID

	hash string
}

// BuildWorldGraph validates def and lays it out as an arena graph.
// Duplicate names, dangling path targets, a missing start region and event
// checks naming non-event items are reported as *CompileError.
func BuildWorldGraph(def *Definition) (*Graph, error) {
	if def == nil {
		return nil, &CompileError{Field: "world", Message: "no definition"}
	}

	g := &Graph{
		regionByName: make(map[string]RegionID, len(def.Regions)),
		checkByName:  make(map[string]CheckID),
	}

	for _, rd := range def.Regions {
		if rd.Name == "" {
			return nil, &CompileError{Field: "regions", Message: "region name must not be empty", Pos: rd.Pos}
		}
		if _, dup := g.regionByName[rd.Name]; dup {
			return nil, &CompileError{Field: "regions", Message: fmt.Sprintf("duplicate region %q", rd.Name), Pos: rd.Pos}
		}
		id := RegionID(len(g.regions))
		g.regionByName[rd.Name] = id
		g.regions = append(g.regions, Region{ID: id, Name: rd.Name, Area: rd.Area})
	}

	start, ok := g.regionByName[def.Start]
	if !ok {
		return nil, &CompileError{Field: "start", Message: fmt.Sprintf("start region %q is not defined", def.Start)}
	}
	g.start = start

	for ri, rd := range def.Regions {
		region := &g.regions[ri]

		for _, cd := range rd.Checks {
			if cd.Name == "" {
				return nil, &CompileError{Field: "checks", Message: "check name must not be empty", Pos: cd.Pos}
			}
			if prev, dup := g.checkByName[cd.Name]; dup {
				owner := g.regions[g.checks[prev].Region].Name
				return nil, &CompileError{
					Field:   "checks",
					Message: fmt.Sprintf("duplicate check %q (already in region %q)", cd.Name, owner),
					Pos:     cd.Pos,
				}
			}
			if cd.Event != item.None && !cd.Event.IsEvent() {
				return nil, &CompileError{
					Field:   "checks." + cd.Name + ".event",
					Message: fmt.Sprintf("%s is not an event item", cd.Event),
					Pos:     cd.Pos,
				}
			}
			id := CheckID(len(g.checks))
			g.checkByName[cd.Name] = id
			g.checks = append(g.checks, Check{
				ID:       id,
				Name:     cd.Name,
				Region:   region.ID,
				Event:    cd.Event,
				Minigame: cd.Minigame,
			})
			region.Checks = append(region.Checks, id)
		}

		for _, pd := range rd.Paths {
			to, ok := g.regionByName[pd.To]
			if !ok {
				return nil, &CompileError{
					Field:   fmt.Sprintf("regions.%q.paths", rd.Name),
					Message: fmt.Sprintf("path target %q is not defined", pd.To),
					Pos:     pd.Pos,
				}
			}
			id := EdgeID(len(g.edges))
			g.edges = append(g.edges, Edge{
				ID:           id,
				From:         region.ID,
				To:           to,
				requirements: requirementsByMode(pd.Alternatives),
			})
			region.Edges = append(region.Edges, id)
		}
	}

	h, err := canonical.Hash(canonical.DomainWorld, canonicalForm(def))
	if err != nil {
		return nil, fmt.Errorf("hash world: %w", err)
	}
	g.hash = h

	return g, nil
}

// requirementsByMode folds tier alternatives into one requirement per mode.
// A mode sees the disjunction of every alternative at or below its tier;
// NoLogic opens every edge.
func requirementsByMode(alts []Alternative) [settings.NumModes]logic.Expr {
	var reqs [settings.NumModes]logic.Expr
	if len(alts) == 0 {
		alts = []Alternative{{Mode: settings.Normal, Requirement: logic.True()}}
	}
	for _, mode := range settings.Modes() {
		if mode == settings.NoLogic {
			reqs[mode] = logic.True()
			continue
		}
		var open []logic.Expr
		for _, alt := range alts {
			if alt.Mode <= mode {
				open = append(open, alt.Requirement)
			}
		}
		reqs[mode] = logic.Or(open...)
	}
	return reqs
}

func canonicalForm(def *Definition) map[string]any {
	regions := make([]any, 0, len(def.Regions))
	for _, rd := range def.Regions {
		checks := make([]any, 0, len(rd.Checks))
		for _, cd := range rd.Checks {
			c := map[string]any{"name": cd.Name}
			if cd.Event != item.None {
				c["event"] = cd.Event.String()
			}
			if cd.Minigame {
				c["minigame"] = true
			}
			checks = append(checks, c)
		}
		paths := make([]any, 0, len(rd.Paths))
		for _, pd := range rd.Paths {
			p := map[string]any{"to": pd.To}
			for _, alt := range pd.Alternatives {
				p[alt.Mode.String()] = alt.Requirement.String()
			}
			paths = append(paths, p)
		}
		regions = append(regions, map[string]any{
			"name":   rd.Name,
			"area":   rd.Area,
			"checks": checks,
			"paths":  paths,
		})
	}
	return map[string]any{"start": def.Start, "regions": regions}
}

// Start returns the entry region.
func (g *Graph) Start() RegionID { return g.start }

// Hash identifies the world content the graph was built from.
func (g *Graph) Hash() string { return g.hash }

// NumRegions returns the number of regions.
func (g *Graph) NumRegions() int { return len(g.regions) }

// NumChecks returns the number of checks, events included.
func (g *Graph) NumChecks() int { return len(g.checks) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Region returns the region with the given handle.
func (g *Graph) Region(id RegionID) *Region { return &g.regions[id] }

// Check returns the check with the given handle.
func (g *Graph) Check(id CheckID) *Check { return &g.checks[id] }

// Edge returns the edge with the given handle.
func (g *Graph) Edge(id EdgeID) *Edge { return &g.edges[id] }

// RegionByName looks up a region handle.
func (g *Graph) RegionByName(name string) (RegionID, bool) {
	id, ok := g.regionByName[name]
	return id, ok
}

// CheckByName looks up a check handle.
func (g *Graph) CheckByName(name string) (CheckID, bool) {
	id, ok := g.checkByName[name]
	return id, ok
}

// Checks returns every check handle in declaration order.
func (g *Graph) Checks() []CheckID {
	ids := make([]CheckID, len(g.checks))
	for i := range ids {
		ids[i] = CheckID(i)
	}
	return ids
}

// ItemSlots returns the number of checks that receive a pool item, that is
// every check that is not an event.
func (g *Graph) ItemSlots() int {
	n := 0
	for i := range g.checks {
		if !g.checks[i].IsEvent() {
			n++
		}
	}
	return n
}

// Excluded reports whether settings remove the check from every reachable
// set: it is listed in its area's exclusion set, or it is a minigame and
// minigames are excluded.
func (g *Graph) Excluded(id CheckID, s settings.Settings) bool {
	c := &g.checks[id]
	if s.MinigamesExcluded && c.Minigame {
		return true
	}
	return s.Exclusions.Excludes(g.regions[c.Region].Area, c.Name)
}
