package world

import (
	"fmt"

	"github.com/roach88/albwlogic/internal/item"
)

// AssignError reports a rejected CheckMap assignment.
type AssignError struct {
	Check   string
	Message string
}

func (e *AssignError) Error() string {
	return fmt.Sprintf("assign %q: %s", e.Check, e.Message)
}

// CheckMap records the item assigned to each check. It is append-only.
type CheckMap struct {
	graph    *Graph
	assigned []item.Item
	count    int
}

// NewCheckMap returns an empty map over g's checks.
func NewCheckMap(g *Graph) *CheckMap {
	return &CheckMap{graph: g, assigned: make([]item.Item, g.NumChecks())}
}

// PrefillCheckMap returns a map with every event check assigned its
// pseudo-item. It must run before any search that relies on events.
func PrefillCheckMap(g *Graph) (*CheckMap, error) {
	m := NewCheckMap(g)
	for _, id := range g.Checks() {
		c := g.Check(id)
		if !c.IsEvent() {
			continue
		}
		if err := m.Assign(id, c.Event); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Assign places it at check id. A check can be assigned once.
func (m *CheckMap) Assign(id CheckID, it item.Item) error {
	if int(id) < 0 || int(id) >= len(m.assigned) {
		return &AssignError{Check: fmt.Sprintf("#%d", id), Message: "no such check"}
	}
	name := m.graph.Check(id).Name
	if !it.Valid() {
		return &AssignError{Check: name, Message: "invalid item"}
	}
	if prev := m.assigned[id]; prev != item.None {
		return &AssignError{Check: name, Message: fmt.Sprintf("already holds %s", prev)}
	}
	m.assigned[id] = it
	m.count++
	return nil
}

// Get returns the item assigned to id, if any.
func (m *CheckMap) Get(id CheckID) (item.Item, bool) {
	if int(id) < 0 || int(id) >= len(m.assigned) {
		return item.None, false
	}
	it := m.assigned[id]
	return it, it != item.None
}

// Len returns the number of assigned checks.
func (m *CheckMap) Len() int { return m.count }

// Clone returns an independent copy.
func (m *CheckMap) Clone() *CheckMap {
	c := &CheckMap{graph: m.graph, assigned: make([]item.Item, len(m.assigned)), count: m.count}
	copy(c.assigned, m.assigned)
	return c
}
