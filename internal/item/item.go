package item

import "fmt"

// Item is an immutable item identity.
type Item uint16

// Class is the logic classification of an item.
type Class uint8

const (
	// ClassTrash items never gate anything.
	ClassTrash Class = iota
	// ClassProgression items are always part of the progression pool.
	ClassProgression
	// ClassSuper items are progression only when super items are enabled.
	ClassSuper
	// ClassSword items are progression unless swordless mode removes them.
	ClassSword
	// ClassEvent items are pseudo-items placed by prefill, never pooled.
	ClassEvent
)

func (c Class) String() string {
	switch c {
	case ClassTrash:
		return "trash"
	case ClassProgression:
		return "progression"
	case ClassSuper:
		return "super"
	case ClassSword:
		return "sword"
	case ClassEvent:
		return "event"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Family groups tiered or counted items under one logic name.
type Family string

type entry struct {
	token  string
	class  Class
	family Family
	tier   int
}

// Count is the number of item identities in the catalog (None excluded).
const Count = int(numItems) - 1

// All returns every item identity in catalog order.
func All() []Item {
	items := make([]Item, 0, Count)
	for i := Item(1); i < numItems; i++ {
		items = append(items, i)
	}
	return items
}

// Valid reports whether i names a catalog entry.
func (i Item) Valid() bool {
	return i > None && i < numItems
}

// String returns the registry token for the item.
func (i Item) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Item(%d)", uint16(i))
	}
	return catalog[i].token
}

// Class returns the logic classification.
func (i Item) Class() Class {
	if !i.Valid() {
		return ClassTrash
	}
	return catalog[i].class
}

// Family returns the family the item belongs to.
func (i Item) Family() Family {
	if !i.Valid() {
		return ""
	}
	return catalog[i].family
}

// Tier returns the upgrade tier, or 0 for items in counted families.
func (i Item) Tier() int {
	if !i.Valid() {
		return 0
	}
	return catalog[i].tier
}

// IsEvent reports whether the item is a prefilled pseudo-item.
func (i Item) IsEvent() bool {
	return i.Class() == ClassEvent
}

// Tiered reports whether the family reports levels by highest tier held.
func (f Family) Tiered() bool {
	members := registry.families[f]
	return len(members) > 0 && members[0].Tier() > 0
}

// Members returns the items of a family in catalog order.
func (f Family) Members() []Item {
	members := registry.families[f]
	out := make([]Item, len(members))
	copy(out, members)
	return out
}

// KnownFamily reports whether any item belongs to f.
func KnownFamily(f Family) bool {
	_, ok := registry.families[f]
	return ok
}
