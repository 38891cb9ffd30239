package gen

import (
	"math/rand"
	"testing"

	"gridcity/internal/grid"
)

func TestPlaceSitesZeroJitterIsExactLattice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sites := placeSites(rng, 20, 20, 8, 0)

	want := []grid.Coord{{X: 4, Y: 4}, {X: 12, Y: 4}, {X: 4, Y: 12}, {X: 12, Y: 12}}
	if len(sites) != len(want) {
		t.Fatalf("expected %d sites, got %d: %v", len(want), len(sites), sites)
	}
	for i, w := range want {
		if sites[i] != w {
			t.Fatalf("site %d: expected %v, got %v", i, w, sites[i])
		}
	}
}

func TestPlaceSitesMinimumSeparation(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		sites := placeSites(rng, 48, 48, 6, 5)
		for i := 0; i < len(sites); i++ {
			for j := i + 1; j < len(sites); j++ {
				if sites[i].Chebyshev(sites[j]) <= 1 {
					t.Fatalf("seed %d: sites %v and %v within chebyshev distance 1", seed, sites[i], sites[j])
				}
			}
		}
	}
}

func TestPlaceSitesInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sites := placeSites(rng, 16, 16, 4, 10) // jitter larger than spacing
	for _, s := range sites {
		if s.X < 0 || s.X >= 16 || s.Y < 0 || s.Y >= 16 {
			t.Fatalf("site %v out of bounds", s)
		}
	}
}

func TestPlaceSitesQuarterPointFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Spacing larger than the grid leaves no lattice points at all.
	sites := placeSites(rng, 16, 16, 32, 0)
	if len(sites) < 4 {
		t.Fatalf("expected quarter-point fallback to reach 4 sites, got %d: %v", len(sites), sites)
	}
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].Chebyshev(sites[j]) <= 1 {
				t.Fatalf("fallback sites %v and %v too close", sites[i], sites[j])
			}
		}
	}
}

func TestExtractBoundariesFourSiteCross(t *testing.T) {
	g := grid.New(20, 20)
	var q EventQueue
	sites := []grid.Coord{{X: 4, Y: 4}, {X: 12, Y: 4}, {X: 4, Y: 12}, {X: 12, Y: 12}}

	n := extractBoundaries(g, &q, sites)
	if n == 0 {
		t.Fatal("expected a non-empty boundary set")
	}
	if q.Len() != n {
		t.Fatalf("expected %d queued events, got %d", n, q.Len())
	}

	// With symmetric sites the partition boundaries are the perpendicular
	// bisector bands between lattice cells: columns 8/9 and rows 8/9 up to
	// where cells meet, ties broken toward the first site.
	if !g.IsRoad(grid.Coord{X: 8, Y: 4}) || !g.IsRoad(grid.Coord{X: 9, Y: 4}) {
		t.Fatal("expected vertical boundary band at x=8,9")
	}
	if !g.IsRoad(grid.Coord{X: 4, Y: 8}) || !g.IsRoad(grid.Coord{X: 4, Y: 9}) {
		t.Fatal("expected horizontal boundary band at y=8,9")
	}
	if g.IsRoad(grid.Coord{X: 0, Y: 0}) {
		t.Fatal("corner tile should not be a boundary")
	}

	// Boundary committed after the full scan: exactly one component.
	if comps := roadComponents(g); len(comps) != 1 {
		t.Fatalf("expected one connected boundary component, got %d", len(comps))
	}
}

func TestExtractBoundariesDegenerateSites(t *testing.T) {
	g := grid.New(10, 10)
	var q EventQueue
	if n := extractBoundaries(g, &q, nil); n != 0 {
		t.Fatalf("expected no boundaries for zero sites, got %d", n)
	}
	if n := extractBoundaries(g, &q, []grid.Coord{{X: 5, Y: 5}}); n != 0 {
		t.Fatalf("expected no boundaries for a single site, got %d", n)
	}
	if g.RoadCount() != 0 {
		t.Fatal("degenerate site sets must not commit roads")
	}
}

func TestNearestSiteTieBreakFirstWins(t *testing.T) {
	sites := []grid.Coord{{X: 2, Y: 5}, {X: 8, Y: 5}}
	// (5,5) is equidistant; the first-encountered site wins.
	if got := nearestSite(sites, grid.Coord{X: 5, Y: 5}); got != 0 {
		t.Fatalf("expected tie to resolve to site 0, got %d", got)
	}
}
