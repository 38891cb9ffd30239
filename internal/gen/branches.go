package gen

import "gridcity/internal/grid"

// selectBranches scores every empty tile with coherent noise and keeps those
// above the threshold. These become extra graph nodes so the road network
// grows spurs beyond the Voronoi backbone.
func selectBranches(g *grid.Grid, noise *perlinNoise, offset Vec2, scale, threshold float64) []grid.Coord {
	w := float64(g.Width())
	h := float64(g.Height())
	var branches []grid.Coord
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if g.Get(c) != grid.Empty {
				continue
			}
			sample := noise.Sample(offset.X+float64(x)/w*scale, offset.Y+float64(y)/h*scale)
			if sample > threshold {
				branches = append(branches, c)
			}
		}
	}
	return branches
}
