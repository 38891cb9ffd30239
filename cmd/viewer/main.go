// Command viewer is a desktop materializer: it steps the generation
// pipeline a stage at a time and turns the drained placement events into
// pixels. Like the browser client it keeps its own coordinate-keyed tile
// map; the generator's grid is never read directly during playback.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcity/internal/gen"
	"gridcity/internal/grid"
)

var palette = map[grid.Tile]color.RGBA{
	grid.Empty:       {R: 0x16, G: 0x16, B: 0x1d, A: 0xff},
	grid.Residential: {R: 0x4c, G: 0xaf, B: 0x7d, A: 0xff},
	grid.Commercial:  {R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
	grid.Industrial:  {R: 0xc9, G: 0xa2, B: 0x27, A: 0xff},
	grid.Road:        {R: 0x55, G: 0x55, B: 0x60, A: 0xff},
}

// stageFrames is how many frames each committed stage stays on screen
// before the next one runs.
const stageFrames = 20

type viewer struct {
	cfg       gen.Config
	generator *gen.Generator

	tiles map[grid.Coord]grid.Tile
	pix   []byte
	img   *ebiten.Image
	more  bool
	frame int
}

func newViewer(cfg gen.Config) (*viewer, error) {
	v := &viewer{
		cfg: cfg,
		img: ebiten.NewImage(cfg.Width, cfg.Height),
		pix: make([]byte, cfg.Width*cfg.Height*4),
	}
	return v, v.reset(cfg.Seed)
}

func (v *viewer) reset(seed int64) error {
	cfg := v.cfg
	cfg.Seed = seed
	generator, err := gen.NewGenerator(cfg)
	if err != nil {
		return err
	}
	v.generator = generator
	v.tiles = make(map[grid.Coord]grid.Tile, cfg.Width*cfg.Height)
	v.more = true
	v.frame = 0
	return nil
}

func (v *viewer) apply(events []gen.PlacementEvent) {
	for _, ev := range events {
		if ev.Action == gen.ActionRemove {
			v.tiles[ev.Coord] = grid.Empty
			continue
		}
		v.tiles[ev.Coord] = ev.Kind
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return v.reset(time.Now().UnixNano())
	}

	v.frame++
	if v.more && v.frame%stageFrames == 0 {
		v.more = v.generator.Step()
		v.apply(v.generator.Queue().Drain())
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	w := v.cfg.Width
	for y := 0; y < v.cfg.Height; y++ {
		for x := 0; x < w; x++ {
			kind := v.tiles[grid.Coord{X: x, Y: y}]
			col := palette[kind]
			base := (y*w + x) * 4
			v.pix[base+0] = col.R
			v.pix[base+1] = col.G
			v.pix[base+2] = col.B
			v.pix[base+3] = col.A
		}
	}
	v.img.WritePixels(v.pix)
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

func main() {
	cfg := gen.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	flag.IntVar(&cfg.SiteSpacing, "spacing", cfg.SiteSpacing, "voronoi site lattice spacing")
	flag.IntVar(&cfg.Jitter, "jitter", cfg.Jitter, "voronoi site jitter magnitude")
	flag.Float64Var(&cfg.NoiseThreshold, "threshold", cfg.NoiseThreshold, "branch noise threshold [0,1]")
	flag.Float64Var(&cfg.BuildChance, "chance", cfg.BuildChance, "per-tile building probability")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "generation seed")
	scale := flag.Int("pixelscale", 10, "window pixels per tile")
	flag.Parse()

	v, err := newViewer(cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	px := *scale
	if px < 1 {
		px = 1
	}
	ebiten.SetWindowSize(cfg.Width*px, cfg.Height*px)
	ebiten.SetWindowTitle("gridcity")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
