package world

import (
	"fmt"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/settings"
)

// Warning is a finding about world data that does not stop the graph from
// building but leaves part of it unreachable under logic.
type Warning struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Warning kinds.
const (
	// WarnOrphanRegion marks a region with no path from the start region
	// in any mode.
	WarnOrphanRegion = "orphan_region"

	// WarnMissingEvent marks an event item some edge requires but no check
	// grants.
	WarnMissingEvent = "missing_event"

	// WarnSelfGatedEvent marks an event check whose region can only be
	// entered with that same event.
	WarnSelfGatedEvent = "self_gated_event"
)

// Lint reports structural problems in g. Warnings are ordered by kind and
// then by declaration order; a graph with no problems yields an empty,
// non-nil slice.
func Lint(g *Graph) []Warning {
	warnings := []Warning{}
	warnings = append(warnings, orphanRegions(g)...)
	warnings = append(warnings, missingEvents(g)...)
	warnings = append(warnings, selfGatedEvents(g)...)
	return warnings
}

func orphanRegions(g *Graph) []Warning {
	seen := make([]bool, len(g.regions))
	seen[g.start] = true
	queue := []RegionID{g.start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, eid := range g.regions[r].Edges {
			to := g.edges[eid].To
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}

	var out []Warning
	for i := range g.regions {
		if !seen[i] {
			out = append(out, Warning{
				Kind:    WarnOrphanRegion,
				Subject: g.regions[i].Name,
				Message: "no path leads here from the start region",
			})
		}
	}
	return out
}

func missingEvents(g *Graph) []Warning {
	granted := map[item.Item]bool{}
	for _, c := range g.checks {
		if c.IsEvent() {
			granted[c.Event] = true
		}
	}

	reported := map[item.Item]bool{}
	var out []Warning
	for _, e := range g.edges {
		for _, it := range e.Requirement(settings.GlitchHell).Items() {
			if it.Class() != item.ClassEvent || granted[it] || reported[it] {
				continue
			}
			reported[it] = true
			out = append(out, Warning{
				Kind:    WarnMissingEvent,
				Subject: it.String(),
				Message: fmt.Sprintf("required on %s -> %s but granted by no check",
					g.regions[e.From].Name, g.regions[e.To].Name),
			})
		}
	}
	return out
}

func selfGatedEvents(g *Graph) []Warning {
	inbound := make([][]EdgeID, len(g.regions))
	for _, e := range g.edges {
		inbound[e.To] = append(inbound[e.To], e.ID)
	}

	var out []Warning
	for _, c := range g.checks {
		if !c.IsEvent() || c.Region == g.start || len(inbound[c.Region]) == 0 {
			continue
		}
		gated := true
		for _, eid := range inbound[c.Region] {
			if !requires(g.edges[eid].Requirement(settings.GlitchHell), c.Event) {
				gated = false
				break
			}
		}
		if gated {
			out = append(out, Warning{
				Kind:    WarnSelfGatedEvent,
				Subject: c.Name,
				Message: fmt.Sprintf("every path into %s requires %s, which this check grants",
					g.regions[c.Region].Name, c.Event),
			})
		}
	}
	return out
}

// requires reports whether every way of satisfying the requirement needs it.
// Only conjunctions of item terms are treated as requiring; any disjunction
// containing an alternative without it does not.
func requires(req logic.Expr, it item.Item) bool {
	switch req.Kind {
	case logic.KindHas:
		return req.Item == it
	case logic.KindAnd:
		for _, a := range req.Args {
			if requires(a, it) {
				return true
			}
		}
		return false
	case logic.KindOr:
		for _, a := range req.Args {
			if !requires(a, it) {
				return false
			}
		}
		return len(req.Args) > 0
	default:
		return false
	}
}
