package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Residential
	Commercial
	Industrial
	Road
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Residential:
		return "residential"
	case Commercial:
		return "commercial"
	case Industrial:
		return "industrial"
	case Road:
		return "road"
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Zoned reports whether the tile holds a building.
func (t Tile) Zoned() bool {
	return t == Residential || t == Commercial || t == Industrial
}

// Coord addresses a single tile.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbors4 are the orthogonal neighbor offsets, in N/E/S/W order.
var Neighbors4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors8 adds the diagonal offsets.
var Neighbors8 = [8]Coord{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

// Manhattan returns the L1 distance to o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Chebyshev returns the L∞ distance to o.
func (c Coord) Chebyshev(o Coord) int {
	dx := abs(c.X - o.X)
	dy := abs(c.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is the authoritative tile store. It owns every tile and keeps the
// road set in sync with tile writes. There is exactly one mutator at a time;
// enumeration for deterministic decisions must always be a row-major scan,
// never iteration over the road set.
type Grid struct {
	width  int
	height int
	tiles  []Tile
	roads  mapset.Set[Coord]
}

// New allocates a width×height grid with every tile Empty.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		roads:  mapset.New[Coord](),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c addresses a tile of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) index(c Coord) int { return c.Y*g.width + c.X }

// Get returns the tile at c. The caller must have checked InBounds; an
// out-of-bounds read is a precondition violation and panics rather than
// wrapping or clamping.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: get out of bounds: (%d,%d)", c.X, c.Y))
	}
	return g.tiles[g.index(c)]
}

// Set writes the tile at c and maintains road set membership. Same bounds
// precondition as Get.
func (g *Grid) Set(c Coord, t Tile) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: set out of bounds: (%d,%d)", c.X, c.Y))
	}
	old := g.tiles[g.index(c)]
	g.tiles[g.index(c)] = t
	if old == Road && t != Road {
		g.roads.Remove(c)
	} else if old != Road && t == Road {
		g.roads.Put(c)
	}
}

// IsRoad is an O(1) membership query against the road set.
func (g *Grid) IsRoad(c Coord) bool { return g.roads.Has(c) }

// RoadCount returns the current size of the road set.
func (g *Grid) RoadCount() int { return g.roads.Size() }

// Clear resets every tile to Empty and empties the road set.
func (g *Grid) Clear() {
	for i := range g.tiles {
		g.tiles[i] = Empty
	}
	g.roads = mapset.New[Coord]()
}

// Tiles returns a flat row-major copy of the tile array, for snapshots.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// RoadCoords returns the road set in row-major order.
func (g *Grid) RoadCoords() []Coord {
	out := make([]Coord, 0, g.roads.Size())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{x, y}
			if g.tiles[g.index(c)] == Road {
				out = append(out, c)
			}
		}
	}
	return out
}
