package gen

import (
	"math/rand"
	"testing"

	"gridcity/internal/grid"
)

func TestPruneRoadWidthOnThreeByThreeBlock(t *testing.T) {
	g := grid.New(8, 8)
	var q EventQueue
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(grid.Coord{X: x, Y: y}, grid.Road)
		}
	}

	removed := pruneRoadWidth(g, &q)
	if removed != 4 {
		t.Fatalf("expected 4 removals from a solid 3x3 block, got %d", removed)
	}
	// The top-left 2x2 block's bottom-right corner must be gone.
	if g.IsRoad(grid.Coord{X: 1, Y: 1}) {
		t.Fatal("expected (1,1) pruned")
	}
	// The remainder is the top row plus left column: an L, still connected.
	want := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	if g.RoadCount() != len(want) {
		t.Fatalf("expected %d road tiles after pruning, got %d", len(want), g.RoadCount())
	}
	for _, c := range want {
		if !g.IsRoad(c) {
			t.Fatalf("expected road at %v", c)
		}
	}
	if comps := roadComponents(g); len(comps) != 1 {
		t.Fatalf("pruning disconnected the block: %d components", len(comps))
	}
}

func TestPruneRoadWidthMarksAgainstSettledGrid(t *testing.T) {
	// A 2x4 strip: blocks at x=0,1,2 all qualify against the original
	// grid, so all three bottom-right corners go, even though applying the
	// first removal immediately would have hidden the second block.
	g := grid.New(8, 8)
	var q EventQueue
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			g.Set(grid.Coord{X: x, Y: y}, grid.Road)
		}
	}
	removed := pruneRoadWidth(g, &q)
	if removed != 3 {
		t.Fatalf("expected 3 removals, got %d", removed)
	}
	for _, c := range []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}} {
		if g.IsRoad(c) {
			t.Fatalf("expected %v pruned", c)
		}
	}
}

func TestPlaceBuildingsOnlyOnEmpty(t *testing.T) {
	g := grid.New(20, 20)
	var q EventQueue
	for x := 0; x < 20; x++ {
		g.Set(grid.Coord{X: x, Y: 10}, grid.Road)
	}
	rng := rand.New(rand.NewSource(5))

	placed := placeBuildings(g, &q, rng, 0.5)
	if placed == 0 {
		t.Fatal("expected some buildings at 50% chance")
	}
	for x := 0; x < 20; x++ {
		if g.Get(grid.Coord{X: x, Y: 10}) != grid.Road {
			t.Fatal("placement must not overwrite roads")
		}
	}
	if placed != q.Len() {
		t.Fatalf("%d placements but %d events", placed, q.Len())
	}
}

func TestPlaceBuildingsZeroChance(t *testing.T) {
	g := grid.New(10, 10)
	var q EventQueue
	rng := rand.New(rand.NewSource(1))
	if placed := placeBuildings(g, &q, rng, 0); placed != 0 {
		t.Fatalf("expected no buildings at zero chance, got %d", placed)
	}
}

func TestRollZoneDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := map[grid.Tile]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[rollZone(rng)]++
	}
	check := func(kind grid.Tile, want float64) {
		got := float64(counts[kind]) / n
		if got < want-0.03 || got > want+0.03 {
			t.Fatalf("%v frequency %.3f, expected ≈%.2f", kind, got, want)
		}
	}
	check(grid.Residential, 0.5)
	check(grid.Commercial, 0.3)
	check(grid.Industrial, 0.2)
}

func TestRemoveIsolated(t *testing.T) {
	g := grid.New(10, 10)
	var q EventQueue
	// A lone road tile, a lone building, and a proper pair.
	g.Set(grid.Coord{X: 2, Y: 2}, grid.Road)
	g.Set(grid.Coord{X: 7, Y: 7}, grid.Commercial)
	g.Set(grid.Coord{X: 4, Y: 4}, grid.Residential)
	g.Set(grid.Coord{X: 4, Y: 5}, grid.Residential)

	removed := removeIsolated(g, &q)
	if removed != 2 {
		t.Fatalf("expected 2 isolated tiles removed, got %d", removed)
	}
	if g.Get(grid.Coord{X: 2, Y: 2}) != grid.Empty || g.RoadCount() != 0 {
		t.Fatal("isolated road tile must revert to empty and leave the road set")
	}
	if g.Get(grid.Coord{X: 4, Y: 4}) != grid.Residential {
		t.Fatal("paired tiles must survive")
	}
}

func TestRemoveIsolatedDifferentKindsDontCount(t *testing.T) {
	g := grid.New(6, 6)
	var q EventQueue
	// Adjacent but different kinds: both are isolated.
	g.Set(grid.Coord{X: 2, Y: 2}, grid.Residential)
	g.Set(grid.Coord{X: 2, Y: 3}, grid.Commercial)
	if removed := removeIsolated(g, &q); removed != 2 {
		t.Fatalf("expected both mismatched neighbors removed, got %d", removed)
	}
}

func TestFillGapsLeavesNoEmpty(t *testing.T) {
	g := grid.New(12, 12)
	var q EventQueue
	for x := 0; x < 12; x++ {
		g.Set(grid.Coord{X: x, Y: 6}, grid.Road)
	}
	rng := rand.New(rand.NewSource(2))

	filled := fillGaps(g, &q, rng)
	if filled != 12*12-12 {
		t.Fatalf("expected %d filled tiles, got %d", 12*12-12, filled)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if g.Get(grid.Coord{X: x, Y: y}) == grid.Empty {
				t.Fatalf("tile (%d,%d) still empty after gap fill", x, y)
			}
		}
	}
}
