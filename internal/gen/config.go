package gen

import "fmt"

// Vec2 is a 2D offset into noise space.
type Vec2 struct {
	X float64
	Y float64
}

// Config holds every static input of the generation pipeline. Dimensions are
// validated (fatal), everything else is clamped into a usable range before
// the pipeline starts.
type Config struct {
	Width  int
	Height int

	// SiteSpacing is the Voronoi lattice spacing; Jitter the per-axis
	// uniform displacement magnitude applied to each lattice point.
	SiteSpacing int
	Jitter      int

	// NoiseScale stretches branch-selection noise across the grid;
	// NoiseThreshold in [0,1] is the selection cutoff. NoiseOffset shifts
	// the sample window; when zero it is drawn from the seeded rng so
	// distinct seeds explore distinct noise regions.
	NoiseScale     float64
	NoiseThreshold float64
	NoiseOffset    Vec2

	// EdgeSearchRadius bounds how far from a map border the edge-connection
	// stage looks for a road tile to extend outward.
	EdgeSearchRadius int

	// BuildChance is the independent per-tile probability of placing a
	// building on an empty tile.
	BuildChance float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            64,
		Height:           64,
		SiteSpacing:      12,
		Jitter:           3,
		NoiseScale:       0.8,
		NoiseThreshold:   0.62,
		EdgeSearchRadius: 8,
		BuildChance:      0.35,
		Seed:             1,
	}
}

// validate checks fatal conditions and clamps the rest in place.
func (c *Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("gen: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SiteSpacing < 1 {
		c.SiteSpacing = 1
	}
	if c.Jitter < 0 {
		c.Jitter = 0
	}
	if c.NoiseScale <= 0 || c.NoiseScale > 1 {
		c.NoiseScale = DefaultConfig().NoiseScale
	}
	if c.NoiseThreshold < 0 {
		c.NoiseThreshold = 0
	} else if c.NoiseThreshold > 1 {
		c.NoiseThreshold = 1
	}
	if c.EdgeSearchRadius < 1 {
		c.EdgeSearchRadius = 1
	}
	if c.BuildChance < 0 {
		c.BuildChance = 0
	} else if c.BuildChance > 1 {
		c.BuildChance = 1
	}
	return nil
}
