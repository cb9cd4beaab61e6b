package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
)

const slots = 140

func countClass(items []item.Item, c item.Class) int {
	n := 0
	for _, it := range items {
		if it.Class() == c {
			n++
		}
	}
	return n
}

func TestProgressionMembership(t *testing.T) {
	base := Progression(settings.Settings{})
	assert.Equal(t, 79, countClass(base, item.ClassProgression))
	assert.Equal(t, 4, countClass(base, item.ClassSword))
	assert.Equal(t, 0, countClass(base, item.ClassSuper))
	assert.Len(t, base, 83)

	super := Progression(settings.Settings{SuperItems: true})
	assert.Equal(t, 2, countClass(super, item.ClassSuper))
	assert.Contains(t, super, item.Lamp02)

	swordless := Progression(settings.Settings{SwordlessMode: true})
	assert.Equal(t, 0, countClass(swordless, item.ClassSword))
	assert.Len(t, swordless, 79)

	for _, it := range base {
		assert.NotEqual(t, item.ClassEvent, it.Class(), "events are prefilled, never pooled")
	}
}

func TestProgressionIgnoresUnrelatedSettings(t *testing.T) {
	want := Progression(settings.Settings{})
	got := Progression(settings.Settings{
		Mode:              settings.GlitchHell,
		Lampless:          true,
		SkipTrials:        true,
		MinigamesExcluded: true,
		BootsInShop:       true,
	})
	assert.Equal(t, want, got)
}

func TestTrashCandidates(t *testing.T) {
	plain := TrashCandidates(settings.Settings{})
	assert.Contains(t, plain, item.Net02, "unshuffled super items are filler")
	assert.NotContains(t, plain, item.Sword01)

	super := TrashCandidates(settings.Settings{SuperItems: true})
	assert.NotContains(t, super, item.Net02)
	assert.Len(t, super, len(plain)-2)
}

func TestBuildConservation(t *testing.T) {
	for _, s := range []settings.Settings{
		{},
		{SuperItems: true},
		{SwordlessMode: true},
		{SwordlessMode: true, SuperItems: true},
	} {
		p, err := Build(s, slots, NewRand(7))
		require.NoError(t, err)
		assert.Equal(t, slots, p.Len())
		assert.Equal(t, Progression(s), p.Progression)
	}
}

func TestBuildSeedReproducible(t *testing.T) {
	a, err := Build(settings.Settings{}, slots, NewRand(42))
	require.NoError(t, err)
	b, err := Build(settings.Settings{}, slots, NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a.Trash, b.Trash)

	c, err := Build(settings.Settings{}, slots, NewRand(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Trash, c.Trash)
}

func TestBuildPadsWithFiller(t *testing.T) {
	prog := len(Progression(settings.Settings{}))
	big := prog + len(TrashCandidates(settings.Settings{})) + 5

	p, err := Build(settings.Settings{}, big, NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, big, p.Len())
	assert.Equal(t, []item.Item{filler, filler, filler, filler, filler}, p.Trash[len(p.Trash)-5:])
}

func TestBuildExactFit(t *testing.T) {
	prog := len(Progression(settings.Settings{}))
	p, err := Build(settings.Settings{}, prog, NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, p.Trash)
}

func TestBuildCapacityError(t *testing.T) {
	_, err := Build(settings.Settings{}, 10, NewRand(1))
	var cerr *CapacityError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 10, cerr.Slots)
	assert.Equal(t, 83, cerr.Progression)
}
