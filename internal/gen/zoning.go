package gen

import (
	"math/rand"

	"gridcity/internal/grid"
)

// rollZone draws a building kind from the cumulative zoning distribution:
// 50% residential, 30% commercial, 20% industrial.
func rollZone(rng *rand.Rand) grid.Tile {
	r := rng.Float64()
	switch {
	case r < 0.5:
		return grid.Residential
	case r < 0.8:
		return grid.Commercial
	default:
		return grid.Industrial
	}
}

// placeBuildings assigns a zone kind to empty tiles, each independently with
// probability chance.
func placeBuildings(g *grid.Grid, q *EventQueue, rng *rand.Rand, chance float64) int {
	placed := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if g.Get(c) != grid.Empty {
				continue
			}
			if rng.Float64() >= chance {
				continue
			}
			kind := rollZone(rng)
			g.Set(c, kind)
			q.Place(c, kind)
			placed++
		}
	}
	return placed
}

// pruneRoadWidth thins 2×2 all-road blocks by reverting each block's
// bottom-right tile to empty. Marks are collected over the settled grid and
// applied only after the scan, so earlier removals in the same pass cannot
// hide blocks from later comparisons. Must run on a connected network and be
// followed by a repair pass, since thinning can sever joints.
func pruneRoadWidth(g *grid.Grid, q *EventQueue) int {
	var marks []grid.Coord
	for y := 0; y+1 < g.Height(); y++ {
		for x := 0; x+1 < g.Width(); x++ {
			if g.IsRoad(grid.Coord{X: x, Y: y}) &&
				g.IsRoad(grid.Coord{X: x + 1, Y: y}) &&
				g.IsRoad(grid.Coord{X: x, Y: y + 1}) &&
				g.IsRoad(grid.Coord{X: x + 1, Y: y + 1}) {
				marks = append(marks, grid.Coord{X: x + 1, Y: y + 1})
			}
		}
	}
	for _, c := range marks {
		g.Set(c, grid.Empty)
		q.Remove(c, grid.Road)
	}
	return len(marks)
}

// removeIsolated clears every non-empty tile that has no orthogonal neighbor
// of the same kind. Decisions are made against the settled grid and applied
// afterwards.
func removeIsolated(g *grid.Grid, q *EventQueue) int {
	type mark struct {
		c    grid.Coord
		kind grid.Tile
	}
	var marks []mark
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			t := g.Get(c)
			if t == grid.Empty {
				continue
			}
			alone := true
			for _, d := range grid.Neighbors4 {
				n := c.Add(d)
				if g.InBounds(n) && g.Get(n) == t {
					alone = false
					break
				}
			}
			if alone {
				marks = append(marks, mark{c, t})
			}
		}
	}
	for _, m := range marks {
		g.Set(m.c, grid.Empty)
		q.Remove(m.c, m.kind)
	}
	return len(marks)
}

// fillGaps zones every tile still empty after all prior stages, using the
// same distribution as placement.
func fillGaps(g *grid.Grid, q *EventQueue, rng *rand.Rand) int {
	filled := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if g.Get(c) != grid.Empty {
				continue
			}
			kind := rollZone(rng)
			g.Set(c, kind)
			q.Place(c, kind)
			filled++
		}
	}
	return filled
}
