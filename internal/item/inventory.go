package item

// Inventory is a multiset of held items. The zero value is an empty
// inventory ready to use.
type Inventory struct {
	counts [numItems]int
	size   int
}

// NewInventory returns an inventory holding the given items.
func NewInventory(items ...Item) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// ParseInventory resolves tokens through the registry. The first unknown
// token aborts the conversion; nothing is silently dropped.
func ParseInventory(tokens []string) (*Inventory, error) {
	inv := &Inventory{}
	for _, t := range tokens {
		it, err := Parse(t)
		if err != nil {
			return nil, err
		}
		inv.Add(it)
	}
	return inv, nil
}

// Add puts one copy of it into the inventory. Invalid identities are ignored.
func (inv *Inventory) Add(it Item) {
	if !it.Valid() {
		return
	}
	inv.counts[it]++
	inv.size++
}

// Count returns how many copies of it are held. A nil inventory holds
// nothing.
func (inv *Inventory) Count(it Item) int {
	if inv == nil || !it.Valid() {
		return 0
	}
	return inv.counts[it]
}

// Has reports whether at least one copy of it is held.
func (inv *Inventory) Has(it Item) bool {
	return inv.Count(it) > 0
}

// Level returns the logic level of a family: the highest tier held for
// tiered families, the number of members held for counted families.
func (inv *Inventory) Level(f Family) int {
	members := registry.families[f]
	if inv == nil || len(members) == 0 {
		return 0
	}
	level := 0
	if members[0].Tier() > 0 {
		for _, m := range members {
			if inv.counts[m] > 0 && m.Tier() > level {
				level = m.Tier()
			}
		}
		return level
	}
	for _, m := range members {
		level += inv.counts[m]
	}
	return level
}

// Len returns the total number of items held, counting duplicates.
func (inv *Inventory) Len() int {
	return inv.size
}

// Clone returns an independent copy. Cloning nil yields an empty inventory.
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return &Inventory{}
	}
	c := *inv
	return &c
}

// Contains reports whether every copy held by other is also held by inv.
func (inv *Inventory) Contains(other *Inventory) bool {
	for i := range inv.counts {
		if other.counts[i] > inv.counts[i] {
			return false
		}
	}
	return true
}

// Items returns the held items in catalog order, duplicates repeated.
func (inv *Inventory) Items() []Item {
	items := make([]Item, 0, inv.size)
	for i := Item(1); i < numItems; i++ {
		for n := 0; n < inv.counts[i]; n++ {
			items = append(items, i)
		}
	}
	return items
}
