package grid

import "testing"

func TestSetMaintainsRoadSet(t *testing.T) {
	g := New(8, 6)
	c := Coord{3, 2}

	g.Set(c, Road)
	if !g.IsRoad(c) {
		t.Fatalf("expected (%d,%d) in road set after Set(Road)", c.X, c.Y)
	}
	if g.RoadCount() != 1 {
		t.Fatalf("expected road count 1, got %d", g.RoadCount())
	}

	g.Set(c, Residential)
	if g.IsRoad(c) {
		t.Fatal("road set should drop a tile overwritten with a zone")
	}
	if g.RoadCount() != 0 {
		t.Fatalf("expected road count 0, got %d", g.RoadCount())
	}
}

func TestRoadSetMatchesGrid(t *testing.T) {
	g := New(10, 10)
	coords := []Coord{{0, 0}, {9, 9}, {4, 5}, {5, 4}}
	for _, c := range coords {
		g.Set(c, Road)
	}
	g.Set(Coord{4, 5}, Empty)

	want := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := Coord{x, y}
			if g.Get(c) == Road {
				want++
				if !g.IsRoad(c) {
					t.Fatalf("grid says road at (%d,%d) but road set disagrees", x, y)
				}
			} else if g.IsRoad(c) {
				t.Fatalf("road set contains (%d,%d) but grid kind is %v", x, y, g.Get(c))
			}
		}
	}
	if g.RoadCount() != want {
		t.Fatalf("road count %d, grid has %d road tiles", g.RoadCount(), want)
	}
}

func TestGetOutOfBoundsPanics(t *testing.T) {
	g := New(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds get")
		}
	}()
	g.Get(Coord{4, 0})
}

func TestClear(t *testing.T) {
	g := New(5, 5)
	g.Set(Coord{1, 1}, Road)
	g.Set(Coord{2, 2}, Commercial)
	g.Clear()
	if g.RoadCount() != 0 {
		t.Fatalf("expected empty road set after Clear, got %d", g.RoadCount())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Get(Coord{x, y}) != Empty {
				t.Fatalf("expected empty tile at (%d,%d) after Clear", x, y)
			}
		}
	}
}

func TestRoadCoordsRowMajor(t *testing.T) {
	g := New(4, 4)
	g.Set(Coord{3, 1}, Road)
	g.Set(Coord{0, 0}, Road)
	g.Set(Coord{2, 1}, Road)

	got := g.RoadCoords()
	want := []Coord{{0, 0}, {2, 1}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d road coords, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("road coord %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDistances(t *testing.T) {
	a := Coord{1, 2}
	b := Coord{4, -1}
	if d := a.Manhattan(b); d != 6 {
		t.Fatalf("manhattan: expected 6, got %d", d)
	}
	if d := a.Chebyshev(b); d != 3 {
		t.Fatalf("chebyshev: expected 3, got %d", d)
	}
}
