package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/pool"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/testutil"
	"github.com/roach88/albwlogic/internal/world"
)

func names(g *world.Graph, r *Result) []string {
	return r.CheckNames(g)
}

func TestTwoRegion(t *testing.T) {
	g := testutil.MustGraph(t, testutil.TwoRegion())
	m := testutil.MustCheckMap(t, g)
	s := settings.Default()

	empty := AssumedSearch(g, item.NewInventory(), m, s)
	assert.Equal(t, []string{"C0"}, names(g, empty))

	withX := AssumedSearch(g, item.NewInventory(testutil.ItemX), m, s)
	assert.Equal(t, []string{"C0", "C1"}, names(g, withX))
}

func TestEventGated(t *testing.T) {
	g := testutil.MustGraph(t, testutil.EventGated())
	m := testutil.MustCheckMap(t, g)

	res := AssumedSearch(g, nil, m, settings.Default())

	assert.Equal(t, []string{"Lever", "C0", "C1", "Gate", "C2"}, names(g, res))
	assert.Equal(t, []item.Item{testutil.EventY, item.AccessMilkBar}, res.Events)
	assert.True(t, res.Inventory.Has(testutil.EventY))
	assert.Len(t, res.Regions, 3)
}

func TestEventsNeedPrefill(t *testing.T) {
	g := testutil.MustGraph(t, testutil.EventGated())

	res := AssumedSearch(g, nil, nil, settings.Default())
	assert.Equal(t, []string{"Lever", "C0"}, names(g, res))

	// An empty map assigns nothing, so the event is never collected.
	res = AssumedSearch(g, nil, world.NewCheckMap(g), settings.Default())
	assert.Equal(t, []string{"Lever", "C0"}, names(g, res))
}

func TestLateEventNeedsAnotherPass(t *testing.T) {
	// A -> B needs Y, but Y is only collected in C, which is reached after
	// the A -> B edge has already been evaluated in the first pass.
	def := &world.Definition{
		Start: "A",
		Regions: []world.RegionDef{
			{
				Name: "A",
				Area: "Field",
				Paths: []world.PathDef{
					testutil.Path("B", settings.Normal, logic.Has(testutil.EventY, 1)),
					testutil.Path("C", settings.Normal, logic.True()),
				},
			},
			{Name: "B", Area: "Field", Checks: []world.CheckDef{{Name: "Behind Gate"}}},
			{Name: "C", Area: "Field", Checks: []world.CheckDef{{Name: "Lever", Event: testutil.EventY}}},
		},
	}
	g := testutil.MustGraph(t, def)
	res := AssumedSearch(g, nil, testutil.MustCheckMap(t, g), settings.Default())

	assert.Contains(t, names(g, res), "Behind Gate")
	assert.Equal(t, 3, res.Passes)
}

func TestSearchDoesNotMutateInventory(t *testing.T) {
	g := testutil.MustGraph(t, testutil.EventGated())
	inv := item.NewInventory(item.Bell)

	AssumedSearch(g, inv, testutil.MustCheckMap(t, g), settings.Default())
	assert.Equal(t, 1, inv.Len())
	assert.False(t, inv.Has(testutil.EventY))
}

func TestTieredModes(t *testing.T) {
	g := testutil.MustGraph(t, testutil.Tiered())
	inv := item.NewInventory(item.Bombs01, item.PegasusBoots)

	reach := func(s settings.Settings) []string {
		return names(g, AssumedSearch(g, inv, nil, s))
	}

	assert.Empty(t, reach(settings.Settings{Mode: settings.Normal}))
	assert.Equal(t, []string{"Hard Chest"}, reach(settings.Settings{Mode: settings.Hard}))
	assert.Equal(t, []string{"Hard Chest", "Glitch Chest"}, reach(settings.Settings{Mode: settings.GlitchBasic}))
	assert.Equal(t, []string{"Hard Chest", "Glitch Chest", "Sword Chest"},
		reach(settings.Settings{Mode: settings.GlitchBasic, SwordlessMode: true}))
	assert.Equal(t, []string{"Hard Chest", "Glitch Chest", "Sword Chest"},
		names(g, AssumedSearch(g, nil, nil, settings.Settings{Mode: settings.NoLogic})))
}

func TestExclusionEnforcement(t *testing.T) {
	g := testutil.MustGraph(t, testutil.EventGated())
	m := testutil.MustCheckMap(t, g)

	s := settings.Settings{
		MinigamesExcluded: true,
		Exclusions:        settings.NewExclusions(map[string][]string{"Field": {"C1", "Lever"}}),
	}
	res := AssumedSearch(g, nil, m, s)

	assert.Equal(t, []string{"C0", "Gate"}, names(g, res))
	// Excluded event checks are still collected.
	assert.Equal(t, []item.Item{testutil.EventY, item.AccessMilkBar}, res.Events)
	c, _ := g.CheckByName("C2")
	assert.True(t, res.RegionReached(g.Check(c).Region))
	assert.False(t, res.CheckReached(c))
}

func embedded(t *testing.T) (*world.Graph, *world.CheckMap) {
	t.Helper()
	g, m, err := New().World()
	require.NoError(t, err)
	return g, m
}

func TestEmbeddedEmptyInventory(t *testing.T) {
	g, m := embedded(t)
	res := AssumedSearch(g, nil, m, settings.Default())
	got := names(g, res)

	assert.Contains(t, got, "Ravio (1)")
	assert.Contains(t, got, "Blacksmith Table", "unlocked by an event collected in a later region")
	assert.NotContains(t, got, "[EP] Prize")
	assert.NotContains(t, got, "Blacksmith", "forge needs a sword and ore")
	assert.GreaterOrEqual(t, res.Passes, 2)
}

func allSettings() []settings.Settings {
	var out []settings.Settings
	for _, mode := range settings.Modes() {
		for bits := 0; bits < 16; bits++ {
			out = append(out, settings.Settings{
				Mode:          mode,
				SwordlessMode: bits&1 != 0,
				Lampless:      bits&2 != 0,
				SkipTrials:    bits&4 != 0,
				SuperItems:    bits&8 != 0,
			})
		}
	}
	return out
}

func TestFillCompleteness(t *testing.T) {
	g, m := embedded(t)
	for _, s := range allSettings() {
		inv := item.NewInventory(pool.Progression(s)...)
		res := AssumedSearch(g, inv, m, s)

		assert.Len(t, res.Checks, g.NumChecks(), "mode=%s swordless=%t lampless=%t", s.Mode, s.SwordlessMode, s.Lampless)
		assert.True(t, res.Inventory.Has(item.Triforce))
	}
}

func TestNoLogicCompleteness(t *testing.T) {
	g, m := embedded(t)
	s := settings.Settings{
		Mode:              settings.NoLogic,
		MinigamesExcluded: true,
		Exclusions:        settings.NewExclusions(map[string][]string{"Hyrule": {"Woman", "Irene"}}),
	}

	want := 0
	for _, id := range g.Checks() {
		if !g.Excluded(id, s) {
			want++
		}
	}

	for _, inv := range []*item.Inventory{nil, item.NewInventory(item.Bow01), item.NewInventory(pool.Progression(s)...)} {
		res := AssumedSearch(g, inv, m, s)
		assert.Len(t, res.Checks, want)
		assert.NotContains(t, names(g, res), "Woman")
		assert.NotContains(t, names(g, res), "Octoball Derby")
	}
}

func TestMonotonicity(t *testing.T) {
	g, m := embedded(t)
	rng := rand.New(rand.NewPCG(1, 2))

	for _, s := range []settings.Settings{{}, {Mode: settings.GlitchAdvanced, Lampless: true}} {
		full := pool.Progression(s)
		for trial := 0; trial < 25; trial++ {
			order := slices.Clone(full)
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			a := rng.IntN(len(order))
			b := a + rng.IntN(len(order)-a+1)

			small := AssumedSearch(g, item.NewInventory(order[:a]...), m, s)
			large := AssumedSearch(g, item.NewInventory(order[:b]...), m, s)
			for _, id := range small.Checks {
				assert.True(t, large.CheckReached(id), "check %s lost when inventory grew", g.Check(id).Name)
			}
		}
	}
}

func TestUpgradedToolOpensLowerTierGates(t *testing.T) {
	g, m := embedded(t)
	s := settings.Default()

	for _, fam := range []item.Family{"Bow", "Boomerang", "Hookshot", "Bombs", "FireRod", "IceRod", "Hammer", "SandRod", "TornadoRod"} {
		t.Run(string(fam), func(t *testing.T) {
			members := fam.Members()
			require.Len(t, members, 2)

			var base []item.Item
			for _, it := range pool.Progression(s) {
				if it.Family() != fam {
					base = append(base, it)
				}
			}

			low := AssumedSearch(g, item.NewInventory(append(slices.Clone(base), members[0])...), m, s)
			high := AssumedSearch(g, item.NewInventory(append(slices.Clone(base), members[1])...), m, s)
			for _, id := range low.Checks {
				assert.True(t, high.CheckReached(id), "%s lost with %s", g.Check(id).Name, members[1])
			}
		})
	}

	basic := AssumedSearch(g, testutil.Inventory(t, "Glove01", "Lamp01", "FireRod01", "Bombs01", "Hookshot01", "Bow01"), m, s)
	upgraded := AssumedSearch(g, testutil.Inventory(t, "Glove01", "Lamp01", "FireRod02", "Bombs02", "Hookshot02", "Bow02"), m, s)
	assert.Equal(t, names(g, basic), names(g, upgraded))
}

func TestIdempotence(t *testing.T) {
	g, m := embedded(t)
	inv := testutil.Inventory(t, "Glove01", "Hookshot01", "Lamp01", "Bow01")
	s := settings.Settings{Mode: settings.Hard}

	a := AssumedSearch(g, inv, m, s)
	b := AssumedSearch(g, inv, m, s)
	assert.Equal(t, a.Checks, b.Checks)
	assert.Equal(t, a.Events, b.Events)
}

func TestOrderIndependence(t *testing.T) {
	def, err := world.Embedded()
	require.NoError(t, err)

	reversed := &world.Definition{Start: def.Start}
	for i := len(def.Regions) - 1; i >= 0; i-- {
		rd := def.Regions[i]
		rd.Paths = slices.Clone(rd.Paths)
		slices.Reverse(rd.Paths)
		reversed.Regions = append(reversed.Regions, rd)
	}

	g1 := testutil.MustGraph(t, def)
	g2 := testutil.MustGraph(t, reversed)
	m1 := testutil.MustCheckMap(t, g1)
	m2 := testutil.MustCheckMap(t, g2)

	invs := [][]string{
		nil,
		{"Glove01"},
		{"Flippers", "TornadoRod01", "GalesKeySmall01", "GalesKeySmall02", "GalesKeySmall03", "GalesKeySmall04", "Lamp01"},
		{"Bow01", "EasternKeySmall01", "EasternKeySmall02", "EasternKeyBig", "Hammer01", "Glove01"},
	}
	for _, tokens := range invs {
		inv := testutil.Inventory(t, tokens...)
		for _, mode := range settings.Modes() {
			s := settings.Settings{Mode: mode}
			a := SortFold(names(g1, AssumedSearch(g1, inv, m1, s)))
			b := SortFold(names(g2, AssumedSearch(g2, inv, m2, s)))
			assert.Equal(t, a, b, "mode %s inventory %v", mode, tokens)
		}
	}
}

func TestQueryReachable(t *testing.T) {
	e := New(WithWorld(testutil.TwoRegion()))

	got, err := e.QueryReachable(settings.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"C0"}, got)

	got, err = e.QueryReachable(settings.Default(), []string{testutil.ItemX.String()})
	require.NoError(t, err)
	assert.Equal(t, []string{"C0", "C1"}, got)
}

func TestQueryReachableUnknownToken(t *testing.T) {
	e := New(WithWorld(testutil.TwoRegion()))

	_, err := e.QueryReachable(settings.Default(), []string{"Bow01", "Slingshot"})
	require.Error(t, err)
	assert.True(t, IsUnknownItem(err))

	var ue *item.UnknownTokenError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Slingshot", ue.Token)
}

func TestQueryPools(t *testing.T) {
	e := New()
	s := settings.Default()

	prog, trash, err := e.QueryPools(s, 99)
	require.NoError(t, err)

	g, _, err := e.World()
	require.NoError(t, err)
	assert.Equal(t, g.ItemSlots(), len(prog)+len(trash))
	assert.Equal(t, SortFold(prog), prog)
	assert.Equal(t, SortFold(trash), trash)

	prog2, trash2, err := e.QueryPools(s, 99)
	require.NoError(t, err)
	assert.Equal(t, prog, prog2)
	assert.Equal(t, trash, trash2)
}

func TestPoolsCapacityError(t *testing.T) {
	e := New(WithWorld(testutil.TwoRegion()))
	_, _, err := e.QueryPools(settings.Default(), 1)

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrCodePoolCapacity, re.Code)
}

func TestWorldBuiltOnce(t *testing.T) {
	var calls atomic.Int32
	e := New(WithWorldSource(func() (*world.Definition, error) {
		calls.Add(1)
		return testutil.EventGated(), nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.QueryReachable(settings.Default(), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestWorldErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	e := New(WithWorldSource(func() (*world.Definition, error) {
		if calls.Add(1) == 1 {
			return &world.Definition{Start: "missing"}, nil
		}
		return testutil.TwoRegion(), nil
	}))

	_, err := e.QueryReachable(settings.Default(), nil)
	require.Error(t, err)
	assert.True(t, IsWorldError(err))

	got, err := e.QueryReachable(settings.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"C0"}, got)
}

func TestCanComplete(t *testing.T) {
	e := New()
	for _, s := range []settings.Settings{{}, {SwordlessMode: true}, {Mode: settings.GlitchHell, SkipTrials: true}} {
		c, err := e.CanComplete(s)
		require.NoError(t, err)
		assert.True(t, c.Complete(), c.String())
	}

	broken := New(WithWorld(testutil.TwoRegion()))
	c, err := broken.CanComplete(settings.Default())
	require.NoError(t, err)
	assert.False(t, c.Beatable, "fixture has no Triforce")
	assert.Empty(t, c.Unreachable, "Bow01 is progression, so C1 is reached")
}

func TestSession(t *testing.T) {
	e := New()
	sess := e.NewSession(settings.Settings{SuperItems: true}, 1234)

	prog, err := sess.ProgressionItemNames()
	require.NoError(t, err)
	assert.Contains(t, prog, "Lamp02")
	assert.Equal(t, uint64(1234), sess.Seed())

	trash, err := sess.TrashItemNames()
	require.NoError(t, err)
	assert.NotContains(t, trash, "Lamp02")

	checks, err := sess.AvailableChecks([]string{"Glove01"})
	require.NoError(t, err)
	assert.Contains(t, checks, "Death Mountain Open Cave")
	assert.NotContains(t, checks, "Floating Island")
}

func TestSortFold(t *testing.T) {
	in := []string{"beta", "Alpha", "alpha", "Gamma", "[EP] Prize", "Ravio (1)"}
	got := SortFold(in)
	assert.Equal(t, []string{"[EP] Prize", "Alpha", "alpha", "beta", "Gamma", "Ravio (1)"}, got)
	assert.Equal(t, "beta", in[0], "input is not reordered")
}
