package gen

import (
	"log"

	"gridcity/internal/grid"
)

// roadComponents partitions the road set into 4-connected components with a
// queue-based flood fill. Seeds are visited in row-major order, so component
// order — and every tie-break derived from it — is stable for a given grid.
// Components are recomputed from scratch on every call because earlier
// stages may have altered the road set.
func roadComponents(g *grid.Grid) [][]grid.Coord {
	w, h := g.Width(), g.Height()
	compID := make([]int, w*h)
	for i := range compID {
		compID[i] = -1
	}

	var components [][]grid.Coord
	queue := make([]grid.Coord, 0, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.IsRoad(c) || compID[y*w+x] != -1 {
				continue
			}
			id := len(components)
			compID[y*w+x] = id
			queue = queue[:0]
			queue = append(queue, c)
			members := []grid.Coord{c}

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, d := range grid.Neighbors4 {
					n := cur.Add(d)
					if !g.InBounds(n) || !g.IsRoad(n) {
						continue
					}
					if compID[n.Y*w+n.X] != -1 {
						continue
					}
					compID[n.Y*w+n.X] = id
					queue = append(queue, n)
					members = append(members, n)
				}
			}
			components = append(components, members)
		}
	}
	return components
}

// repairConnectivity joins every road component to the largest one using the
// pathfinder, committing each returned path as road. The largest component
// wins ties by first encounter in row-major order. Returns the number of
// components that were merged.
func repairConnectivity(g *grid.Grid, q *EventQueue) int {
	components := roadComponents(g)
	if len(components) <= 1 {
		return 0
	}

	main := 0
	for i, comp := range components {
		if len(comp) > len(components[main]) {
			main = i
		}
	}

	targets := make(map[grid.Coord]bool, len(components[main]))
	for _, c := range components[main] {
		targets[c] = true
	}

	merged := 0
	for i, comp := range components {
		if i == main {
			continue
		}
		path := findPath(g, comp[0], targets)
		if path == nil {
			log.Printf("gen: no path from road component at (%d,%d) to main network, skipping",
				comp[0].X, comp[0].Y)
			continue
		}
		commitRoadPath(g, q, path)
		for _, c := range path {
			targets[c] = true
		}
		for _, c := range comp {
			targets[c] = true
		}
		merged++
	}
	return merged
}

func commitRoadPath(g *grid.Grid, q *EventQueue, path []grid.Coord) {
	for _, c := range path {
		t := g.Get(c)
		if t == grid.Road {
			continue
		}
		if t.Zoned() {
			q.Remove(c, t)
		}
		g.Set(c, grid.Road)
		q.Place(c, grid.Road)
	}
}

// connectEdges extends the network to the map borders so the city is
// reachable from outside. For each side, the road tile nearest to the border
// within the search radius is found and a straight segment is carved out to
// the border; a side with no road inside the radius is skipped with a
// warning.
func connectEdges(g *grid.Grid, q *EventQueue, radius int) {
	w, h := g.Width(), g.Height()

	type side struct {
		name string
		// scan yields, for depth d in [0, radius), the row or column of
		// tiles at that distance from the border, and extend rasterizes
		// from the found road tile out to the border.
		at     func(d, i int) grid.Coord
		span   int
		extend func(c grid.Coord) grid.Coord
	}
	sides := []side{
		{"north", func(d, i int) grid.Coord { return grid.Coord{X: i, Y: d} }, w,
			func(c grid.Coord) grid.Coord { return grid.Coord{X: c.X, Y: 0} }},
		{"south", func(d, i int) grid.Coord { return grid.Coord{X: i, Y: h - 1 - d} }, w,
			func(c grid.Coord) grid.Coord { return grid.Coord{X: c.X, Y: h - 1} }},
		{"west", func(d, i int) grid.Coord { return grid.Coord{X: d, Y: i} }, h,
			func(c grid.Coord) grid.Coord { return grid.Coord{X: 0, Y: c.Y} }},
		{"east", func(d, i int) grid.Coord { return grid.Coord{X: w - 1 - d, Y: i} }, h,
			func(c grid.Coord) grid.Coord { return grid.Coord{X: w - 1, Y: c.Y} }},
	}

	for _, s := range sides {
		found := false
		for d := 0; d < radius && d < max(w, h) && !found; d++ {
			for i := 0; i < s.span; i++ {
				c := s.at(d, i)
				if !g.InBounds(c) || !g.IsRoad(c) {
					continue
				}
				if d > 0 {
					rasterizeL(g, q, c, s.extend(c))
				}
				found = true
				break
			}
		}
		if !found {
			log.Printf("gen: no road within %d tiles of %s border, leaving side unconnected", radius, s.name)
		}
	}
}

// repairAccessibility gives every building a road in its 8-neighborhood by
// pathfinding from stranded buildings to the current road set. Runs after
// placement; failures are logged and skipped.
func repairAccessibility(g *grid.Grid, q *EventQueue) int {
	var stranded []grid.Coord
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.Get(c).Zoned() {
				continue
			}
			hasRoad := false
			for _, d := range grid.Neighbors8 {
				n := c.Add(d)
				if g.InBounds(n) && g.IsRoad(n) {
					hasRoad = true
					break
				}
			}
			if !hasRoad {
				stranded = append(stranded, c)
			}
		}
	}

	repaired := 0
	for _, c := range stranded {
		targets := make(map[grid.Coord]bool, g.RoadCount())
		for _, r := range g.RoadCoords() {
			targets[r] = true
		}
		if len(targets) == 0 {
			log.Printf("gen: no roads exist, cannot repair accessibility")
			break
		}
		path := findPath(g, c, targets)
		if path == nil {
			log.Printf("gen: no road path for stranded building at (%d,%d), skipping", c.X, c.Y)
			continue
		}
		// The building itself stays; only the approach is paved.
		commitRoadPath(g, q, path[1:])
		repaired++
	}
	return repaired
}
