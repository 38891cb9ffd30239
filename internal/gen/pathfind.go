package gen

import (
	"container/heap"

	"gridcity/internal/grid"
)

// Terrain cost of entering a tile kind during pathfinding. Roads are free to
// follow, empty ground is cheap to pave, and carving through a building is a
// last resort.
const (
	costRoad  = 1
	costEmpty = 5
	costZoned = 100
)

func terrainCost(t grid.Tile) int {
	switch {
	case t == grid.Road:
		return costRoad
	case t.Zoned():
		return costZoned
	default:
		return costEmpty
	}
}

type searchItem struct {
	cost int // g + h
	seq  int
	c    grid.Coord
}

type searchHeap []searchItem

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *searchHeap) Push(x any)   { *h = append(*h, x.(searchItem)) }
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// findPath runs a weighted A*-style search from start to any member of
// targets over 4-directional adjacency. The heuristic is the minimum
// Manhattan distance to a target; per-step cost varies by terrain, so the
// heuristic is not strictly admissible — a deliberate approximation kept for
// output compatibility, since the paths it favors hug existing roads.
// Returns the inclusive start→target sequence, or nil when no target is
// reachable within 3·width·height dequeues.
func findPath(g *grid.Grid, start grid.Coord, targets map[grid.Coord]bool) []grid.Coord {
	if len(targets) == 0 || !g.InBounds(start) {
		return nil
	}
	if targets[start] {
		return []grid.Coord{start}
	}

	// Minimum over the target set; iteration order does not matter.
	h := func(c grid.Coord) int {
		best := -1
		for t := range targets {
			if d := c.Manhattan(t); best == -1 || d < best {
				best = d
			}
		}
		return best
	}

	gScore := map[grid.Coord]int{start: 0}
	parent := map[grid.Coord]grid.Coord{}
	closed := map[grid.Coord]bool{}

	frontier := &searchHeap{}
	seq := 0
	heap.Push(frontier, searchItem{cost: h(start), seq: seq, c: start})
	seq++

	budget := 3 * g.Width() * g.Height()
	iterations := 0
	for frontier.Len() > 0 {
		iterations++
		if iterations > budget {
			return nil
		}
		item := heap.Pop(frontier).(searchItem)
		cur := item.c
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if targets[cur] {
			path := []grid.Coord{cur}
			for cur != start {
				cur = parent[cur]
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range grid.Neighbors4 {
			n := cur.Add(d)
			if !g.InBounds(n) || closed[n] {
				continue
			}
			tentative := gScore[cur] + terrainCost(g.Get(n))
			if prev, seen := gScore[n]; !seen || tentative < prev {
				gScore[n] = tentative
				parent[n] = cur
				heap.Push(frontier, searchItem{cost: tentative + h(n), seq: seq, c: n})
				seq++
			}
		}
	}
	return nil
}

// pathCost sums the terrain cost of entering every tile after the first.
func pathCost(g *grid.Grid, path []grid.Coord) int {
	total := 0
	for _, c := range path[1:] {
		total += terrainCost(g.Get(c))
	}
	return total
}
