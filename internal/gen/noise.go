package gen

import (
	"math"
	"math/rand"
)

// perlinNoise is a classic permutation-table Perlin generator. Branch
// selection only needs coherent 2D noise, so a single shuffled table with
// octave summation is enough.
type perlinNoise struct {
	octaves     int
	permutation []int
}

func newPerlinNoise(seed int64, octaves int) *perlinNoise {
	p := &perlinNoise{octaves: octaves}
	p.permutation = make([]int, 256)
	for i := range p.permutation {
		p.permutation[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p.permutation), func(i, j int) {
		p.permutation[i], p.permutation[j] = p.permutation[j], p.permutation[i]
	})
	return p
}

// Sample returns octave-summed noise at (x, y), normalized into [0, 1].
func (p *perlinNoise) Sample(x, y float64) float64 {
	var sum float64
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < p.octaves; i++ {
		sum += p.perlin(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	// Raw perlin lies in roughly [-1, 1]; map to [0, 1] and clamp the tails.
	v := (sum/maxValue + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := y
	if h < 4 {
		u = x
	}
	v := x
	if h < 12 {
		v = y
	}

	result := u
	if (h & 1) != 0 {
		result = -u
	}
	if (h & 2) != 0 {
		result -= v
	} else {
		result += v
	}
	return result
}

func (p *perlinNoise) perlin(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	perm := p.permutation
	aa := perm[(perm[X]+Y)&255]
	ab := perm[(perm[X]+Y+1)&255]
	ba := perm[(perm[(X+1)&255]+Y)&255]
	bb := perm[(perm[(X+1)&255]+Y+1)&255]

	return lerp(
		lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)
}
