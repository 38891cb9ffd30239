// Command gridcity generates a city once and prints it as ASCII, for quick
// inspection of pipeline output without a viewer.
package main

import (
	"flag"
	"fmt"
	"time"

	"gridcity/internal/gen"
	"gridcity/internal/grid"
)

func main() {
	cfg := gen.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	flag.IntVar(&cfg.SiteSpacing, "spacing", cfg.SiteSpacing, "voronoi site lattice spacing")
	flag.IntVar(&cfg.Jitter, "jitter", cfg.Jitter, "voronoi site jitter magnitude")
	flag.Float64Var(&cfg.NoiseScale, "scale", cfg.NoiseScale, "branch noise scale (0,1]")
	flag.Float64Var(&cfg.NoiseThreshold, "threshold", cfg.NoiseThreshold, "branch noise threshold [0,1]")
	flag.Float64Var(&cfg.BuildChance, "chance", cfg.BuildChance, "per-tile building probability")
	flag.IntVar(&cfg.EdgeSearchRadius, "radius", cfg.EdgeSearchRadius, "edge-connection search radius")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "generation seed")
	flag.Parse()

	generator, err := gen.NewGenerator(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	generator.Run()
	generator.Queue().Drain()

	g := generator.Grid()
	counts := map[grid.Tile]int{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := g.Get(grid.Coord{X: x, Y: y})
			counts[t]++
			fmt.Print(string(glyph(t)))
		}
		fmt.Println()
	}
	fmt.Printf("\nroad %d · residential %d · commercial %d · industrial %d · empty %d\n",
		counts[grid.Road], counts[grid.Residential], counts[grid.Commercial],
		counts[grid.Industrial], counts[grid.Empty])
}

func glyph(t grid.Tile) rune {
	switch t {
	case grid.Road:
		return '#'
	case grid.Residential:
		return 'R'
	case grid.Commercial:
		return 'C'
	case grid.Industrial:
		return 'I'
	}
	return '.'
}
