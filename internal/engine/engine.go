package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/pool"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// WorldSource produces the world definition an Engine serves.
type WorldSource func() (*world.Definition, error)

// Engine answers pool and reachability queries against one world.
//
// Thread-safety model:
//   - every method is safe from any goroutine
//   - the graph and prefilled check map are built at most once and never
//     mutated afterwards
//   - each query owns its inventory and search state
type Engine struct {
	source WorldSource
	group  singleflight.Group
	loaded atomic.Pointer[loadedWorld]
}

type loadedWorld struct {
	graph  *world.Graph
	checks *world.CheckMap
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithWorld serves a prebuilt definition, typically a test fixture.
func WithWorld(def *world.Definition) EngineOption {
	return func(e *Engine) {
		e.source = func() (*world.Definition, error) { return def, nil }
	}
}

// WithWorldDir loads the world from a directory of CUE files instead of
// the embedded data.
func WithWorldDir(dir string) EngineOption {
	return func(e *Engine) {
		e.source = func() (*world.Definition, error) { return world.LoadDir(dir) }
	}
}

// WithWorldSource sets an arbitrary world source.
func WithWorldSource(src WorldSource) EngineOption {
	return func(e *Engine) {
		e.source = src
	}
}

// New creates an Engine. Without options it serves the embedded world.
// The world is built lazily on the first query.
func New(opts ...EngineOption) *Engine {
	e := &Engine{source: world.Embedded}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// World returns the shared graph and prefilled check map, building them
// on first use. Concurrent first callers share one build. A failed build
// is not cached.
func (e *Engine) World() (*world.Graph, *world.CheckMap, error) {
	if w := e.loaded.Load(); w != nil {
		return w.graph, w.checks, nil
	}

	v, err, _ := e.group.Do("world", func() (any, error) {
		if w := e.loaded.Load(); w != nil {
			return w, nil
		}

		def, err := e.source()
		if err != nil {
			return nil, err
		}
		g, err := world.BuildWorldGraph(def)
		if err != nil {
			return nil, err
		}
		checks, err := world.PrefillCheckMap(g)
		if err != nil {
			return nil, err
		}

		w := &loadedWorld{graph: g, checks: checks}
		e.loaded.Store(w)
		slog.Info("world loaded",
			"regions", g.NumRegions(),
			"checks", g.NumChecks(),
			"edges", g.NumEdges(),
			"events", checks.Len(),
			"hash", g.Hash(),
		)
		return w, nil
	})
	if err != nil {
		return nil, nil, newWorldError(err)
	}

	w := v.(*loadedWorld)
	return w.graph, w.checks, nil
}

// Search runs an assumed search over the shared world with inv.
func (e *Engine) Search(s settings.Settings, inv *item.Inventory) (*Result, error) {
	g, checks, err := e.World()
	if err != nil {
		return nil, err
	}
	return AssumedSearch(g, inv, checks, s), nil
}

// QueryPools builds the item pools for s and seed and returns their names
// sorted for display.
func (e *Engine) QueryPools(s settings.Settings, seed uint64) (progression, trash []string, err error) {
	p, err := e.Pools(s, seed)
	if err != nil {
		return nil, nil, err
	}
	return SortFold(item.Names(p.Progression)), SortFold(item.Names(p.Trash)), nil
}

// Pools builds the item pools sized to the world's item slots. The trash
// pool keeps its shuffled order.
func (e *Engine) Pools(s settings.Settings, seed uint64) (pool.Pools, error) {
	g, _, err := e.World()
	if err != nil {
		return pool.Pools{}, err
	}
	p, err := pool.Build(s, g.ItemSlots(), pool.NewRand(seed))
	if err != nil {
		return pool.Pools{}, newPoolError(err)
	}
	return p, nil
}

// QueryReachable resolves tokens, runs the search and returns the
// reachable check names sorted for display. An unknown token fails the
// whole query.
func (e *Engine) QueryReachable(s settings.Settings, tokens []string) ([]string, error) {
	inv, err := item.ParseInventory(tokens)
	if err != nil {
		return nil, newUnknownItemError(err)
	}
	g, checks, err := e.World()
	if err != nil {
		return nil, err
	}
	res := AssumedSearch(g, inv, checks, s)
	return SortFold(res.CheckNames(g)), nil
}

// Completion reports whether the full progression pool reaches the world.
type Completion struct {
	// Reachable counts the reachable non-excluded checks.
	Reachable int
	// Unreachable lists the non-excluded checks left unreached, sorted
	// for display.
	Unreachable []string
	// Beatable is true when the Triforce event was collected.
	Beatable bool
}

// Complete reports whether every non-excluded check is reachable and the
// Triforce is collected.
func (c *Completion) Complete() bool {
	return len(c.Unreachable) == 0 && c.Beatable
}

// CanComplete searches with the entire progression pool for s. It is the
// placement-validity proof: any placement whose progression lies in the
// reachable set leaves the game completable.
func (e *Engine) CanComplete(s settings.Settings) (*Completion, error) {
	g, _, err := e.World()
	if err != nil {
		return nil, err
	}

	res, err := e.Search(s, item.NewInventory(pool.Progression(s)...))
	if err != nil {
		return nil, err
	}

	c := &Completion{Reachable: len(res.Checks)}
	for _, cid := range g.Checks() {
		if !res.CheckReached(cid) && !g.Excluded(cid, s) {
			c.Unreachable = append(c.Unreachable, g.Check(cid).Name)
		}
	}
	c.Unreachable = SortFold(c.Unreachable)
	c.Beatable = res.Inventory.Has(item.Triforce)
	return c, nil
}

// IsWorldError reports whether err came from building the world.
func IsWorldError(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re) && re.Code == ErrCodeWorldInvalid
}

// String describes a completion for logs.
func (c *Completion) String() string {
	return fmt.Sprintf("reachable=%d unreachable=%d beatable=%t", c.Reachable, len(c.Unreachable), c.Beatable)
}
