package gen

import (
	"log"
	"math/rand"

	"gridcity/internal/grid"
)

// placeSites generates Voronoi seed points on a jittered lattice. A candidate
// is rejected when an accepted site lies within Chebyshev distance 1, which
// keeps near-duplicate seeds from producing degenerate cells.
func placeSites(rng *rand.Rand, width, height, spacing, jitter int) []grid.Coord {
	sites := make([]grid.Coord, 0, (width/spacing+1)*(height/spacing+1))
	for y := spacing / 2; y < height; y += spacing {
		for x := spacing / 2; x < width; x += spacing {
			c := grid.Coord{X: x, Y: y}
			if jitter > 0 {
				c.X += rng.Intn(2*jitter+1) - jitter
				c.Y += rng.Intn(2*jitter+1) - jitter
			}
			c.X = clamp(c.X, 0, width-1)
			c.Y = clamp(c.Y, 0, height-1)
			if siteTooClose(sites, c) {
				continue
			}
			sites = append(sites, c)
		}
	}

	// Degenerate lattice (tiny grid or oversized spacing): fall back to the
	// quarter points so downstream stages still get a usable partition.
	if len(sites) < 4 && width >= 8 && height >= 8 {
		log.Printf("gen: only %d voronoi sites from lattice, injecting quarter-point fallback", len(sites))
		for _, c := range []grid.Coord{
			{X: width / 4, Y: height / 4},
			{X: 3 * width / 4, Y: height / 4},
			{X: width / 4, Y: 3 * height / 4},
			{X: 3 * width / 4, Y: 3 * height / 4},
		} {
			if !siteTooClose(sites, c) {
				sites = append(sites, c)
			}
		}
	}
	return sites
}

func siteTooClose(sites []grid.Coord, c grid.Coord) bool {
	for _, s := range sites {
		if s.Chebyshev(c) <= 1 {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nearestSite returns the index of the site closest to c by squared
// Euclidean distance. Ties go to the first site in slice order; the slice is
// built in lattice enumeration order, so the tie-break is stable across runs.
func nearestSite(sites []grid.Coord, c grid.Coord) int {
	best := -1
	bestDist := 0
	for i, s := range sites {
		dx := s.X - c.X
		dy := s.Y - c.Y
		d := dx*dx + dy*dy
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// extractBoundaries marks every tile whose nearest site differs from any
// orthogonal neighbor's as a road tile. The nearest-site field is computed
// for the whole grid first and roads are committed afterwards in a second
// pass, so partial writes never skew comparisons within the same scan.
func extractBoundaries(g *grid.Grid, q *EventQueue, sites []grid.Coord) int {
	if len(sites) < 2 {
		log.Printf("gen: %d voronoi sites, no boundaries to extract", len(sites))
		return 0
	}

	w, h := g.Width(), g.Height()
	owner := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			owner[y*w+x] = nearestSite(sites, grid.Coord{X: x, Y: y})
		}
	}

	boundary := make([]grid.Coord, 0, w+h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.Coord{X: x, Y: y}
			for _, d := range grid.Neighbors4 {
				n := c.Add(d)
				if !g.InBounds(n) {
					continue
				}
				if owner[n.Y*w+n.X] != owner[y*w+x] {
					boundary = append(boundary, c)
					break
				}
			}
		}
	}

	for _, c := range boundary {
		g.Set(c, grid.Road)
		q.Place(c, grid.Road)
	}
	return len(boundary)
}
