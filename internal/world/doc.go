// Package world compiles the static world description into the graph the
// reachability search walks.
//
// World data is written in CUE and checked against an embedded #World
// schema. Compile turns a CUE value into a Definition; BuildWorldGraph
// validates a Definition and lays it out as an arena of regions, checks and
// edges addressed by integer handles. Each edge carries one precomputed
// requirement per logic mode, so the search never re-derives topology.
//
// PrefillCheckMap assigns event pseudo-items to their checks. The resulting
// CheckMap is append-only: placement may add assignments but never replace
// one.
package world
