package gen

import (
	"container/heap"
	"log"

	"gridcity/internal/grid"
)

// graphNode is a vertex of the connection graph: either a single branch
// point or an existing road component.
type graphNode struct {
	rep     grid.Coord
	members []grid.Coord // nil for branch points; row-major for components
}

// connectionPoint returns the coordinate this node would be joined at when
// connecting toward target. For components that is the member nearest to the
// target by Manhattan distance, with an early exit once the distance cannot
// improve on adjacency; for branch points it is the point itself. This
// approximates true component-to-point distance without a full search.
func (n *graphNode) connectionPoint(target grid.Coord) grid.Coord {
	if len(n.members) == 0 {
		return n.rep
	}
	best := n.members[0]
	bestDist := best.Manhattan(target)
	for _, m := range n.members[1:] {
		if bestDist <= 1 {
			break
		}
		if d := m.Manhattan(target); d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}

// GraphEdge is an unordered node pair with an integer cost. Endpoints are
// stored canonically (A < B) so equality is symmetric.
type GraphEdge struct {
	A    int
	B    int
	Cost int
}

func newGraphEdge(a, b, cost int) GraphEdge {
	if a > b {
		a, b = b, a
	}
	return GraphEdge{A: a, B: b, Cost: cost}
}

// edgeCost computes the connection cost between two nodes along with the
// concrete endpoints a rasterized road between them would use.
func edgeCost(a, b *graphNode) (int, grid.Coord, grid.Coord) {
	pa := a.connectionPoint(b.rep)
	pb := b.connectionPoint(a.rep)
	return pa.Manhattan(pb), pa, pb
}

// primItem is a frontier entry: lowest cost first, insertion order breaking
// ties so MST output is reproducible.
type primItem struct {
	cost int
	seq  int
	from int
	to   int
}

type primHeap []primItem

func (h primHeap) Len() int { return len(h) }
func (h primHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h primHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *primHeap) Push(x any)   { *h = append(*h, x.(primItem)) }
func (h *primHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// minimumSpanningTree runs Prim's algorithm over the complete graph implied
// by the node slice. The graph is complete so the tree always spans every
// node; a partial result would mean a broken cost function and is logged as
// recoverable rather than treated as fatal.
func minimumSpanningTree(nodes []*graphNode) []GraphEdge {
	if len(nodes) < 2 {
		return nil
	}

	inTree := make([]bool, len(nodes))
	inTree[0] = true
	frontier := &primHeap{}
	seq := 0
	expand := func(from int) {
		for to := range nodes {
			if inTree[to] {
				continue
			}
			cost, _, _ := edgeCost(nodes[from], nodes[to])
			heap.Push(frontier, primItem{cost: cost, seq: seq, from: from, to: to})
			seq++
		}
	}
	expand(0)

	edges := make([]GraphEdge, 0, len(nodes)-1)
	for frontier.Len() > 0 && len(edges) < len(nodes)-1 {
		item := heap.Pop(frontier).(primItem)
		if inTree[item.to] {
			continue
		}
		inTree[item.to] = true
		edges = append(edges, newGraphEdge(item.from, item.to, item.cost))
		expand(item.to)
	}

	if len(edges) < len(nodes)-1 {
		log.Printf("gen: partial MST: %d edges for %d nodes, continuing with partial network",
			len(edges), len(nodes))
	}
	return edges
}

// rasterizeL commits an axis-then-axis road between two points: the full x
// run first, then the y run. Building tiles on the path are cleared with a
// remove event before the road is placed.
func rasterizeL(g *grid.Grid, q *EventQueue, from, to grid.Coord) {
	commit := func(c grid.Coord) {
		t := g.Get(c)
		if t == grid.Road {
			return
		}
		if t.Zoned() {
			q.Remove(c, t)
		}
		g.Set(c, grid.Road)
		q.Place(c, grid.Road)
	}

	step := 1
	if to.X < from.X {
		step = -1
	}
	for x := from.X; x != to.X; x += step {
		commit(grid.Coord{X: x, Y: from.Y})
	}
	step = 1
	if to.Y < from.Y {
		step = -1
	}
	for y := from.Y; y != to.Y; y += step {
		commit(grid.Coord{X: to.X, Y: y})
	}
	commit(to)
}

// connectGraph builds the node set from branch points and road components,
// computes the MST, and rasterizes every tree edge into road tiles.
func connectGraph(g *grid.Grid, q *EventQueue, branches []grid.Coord, components [][]grid.Coord) int {
	nodes := make([]*graphNode, 0, len(branches)+len(components))
	for _, comp := range components {
		nodes = append(nodes, &graphNode{rep: comp[0], members: comp})
	}
	for _, b := range branches {
		nodes = append(nodes, &graphNode{rep: b})
	}
	if len(nodes) < 2 {
		log.Printf("gen: %d graph nodes, nothing to connect", len(nodes))
		return 0
	}

	edges := minimumSpanningTree(nodes)
	for _, e := range edges {
		_, pa, pb := edgeCost(nodes[e.A], nodes[e.B])
		rasterizeL(g, q, pa, pb)
	}
	return len(edges)
}
