// Package pool partitions the item catalog into the progression pool and
// the trash pool for a given settings value and seed.
//
// Membership is a pure function of settings. Only the order of the trash
// pool depends on the seed.
package pool

import (
	"fmt"
	"math/rand/v2"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
)

// Pools is the result of Build. Progression is in catalog order; Trash is
// in shuffled order. Neither is sorted for display.
type Pools struct {
	Progression []item.Item
	Trash       []item.Item
}

// Len returns the total number of pooled items.
func (p Pools) Len() int {
	return len(p.Progression) + len(p.Trash)
}

// CapacityError reports a world with fewer item slots than progression
// items.
type CapacityError struct {
	Slots       int
	Progression int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("progression pool has %d items but the world has %d item slots", e.Progression, e.Slots)
}

// filler pads the trash pool when the catalog runs short.
const filler = item.RupeeGreen

// seedStream is the PCG stream constant; changing it changes every
// shuffle.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns the generator Build expects for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seedStream))
}

// Progression returns the progression pool for s in catalog order. Super
// items join only when super_items is set. Swords are dropped entirely in
// swordless mode.
func Progression(s settings.Settings) []item.Item {
	var out []item.Item
	for _, it := range item.All() {
		switch it.Class() {
		case item.ClassProgression:
			out = append(out, it)
		case item.ClassSword:
			if !s.SwordlessMode {
				out = append(out, it)
			}
		case item.ClassSuper:
			if s.SuperItems {
				out = append(out, it)
			}
		}
	}
	return out
}

// TrashCandidates returns every item eligible for the trash pool, in
// catalog order. Super items fall back to trash when not shuffled as
// progression.
func TrashCandidates(s settings.Settings) []item.Item {
	var out []item.Item
	for _, it := range item.All() {
		switch it.Class() {
		case item.ClassTrash:
			out = append(out, it)
		case item.ClassSuper:
			if !s.SuperItems {
				out = append(out, it)
			}
		}
	}
	return out
}

// Build partitions the catalog for a world with slots item checks. The
// trash candidates are shuffled with rng, then truncated or padded with
// green rupees so that the two pools together fill every slot exactly.
func Build(s settings.Settings, slots int, rng *rand.Rand) (Pools, error) {
	prog := Progression(s)
	if len(prog) > slots {
		return Pools{}, &CapacityError{Slots: slots, Progression: len(prog)}
	}

	trash := TrashCandidates(s)
	rng.Shuffle(len(trash), func(i, j int) {
		trash[i], trash[j] = trash[j], trash[i]
	})

	need := slots - len(prog)
	if len(trash) > need {
		trash = trash[:need]
	}
	for len(trash) < need {
		trash = append(trash, filler)
	}

	return Pools{Progression: prog, Trash: trash}, nil
}
