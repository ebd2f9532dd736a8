package terrain

import (
	"github.com/aquilax/go-perlin"
)

// Seeds holds the fixed noise seeds of every field the generator samples.
type Seeds struct {
	Height int64
	Ravine int64
	Cliff  int64
	Fiord  int64
}

// DefaultSeeds returns the seeds the world is generated with.
func DefaultSeeds() Seeds {
	return Seeds{
		Height: 100,
		Ravine: 100,
		Cliff:  200,
		Fiord:  300,
	}
}

// Generator owns the noise fields used to build chunks.
// It holds no mutable state after construction, so every output is a pure
// function of the chunk coordinate.
type Generator struct {
	seeds  Seeds
	height *perlin.Perlin
	ravine *perlin.Perlin
	cliff  *perlin.Perlin
	fiord  *perlin.Perlin
}

// NewGenerator creates a generator with the given noise seeds.
func NewGenerator(seeds Seeds) *Generator {
	return &Generator{
		seeds:  seeds,
		height: newField(seeds.Height),
		ravine: newField(seeds.Ravine),
		cliff:  newField(seeds.Cliff),
		fiord:  newField(seeds.Fiord),
	}
}

// Seeds returns the noise seeds of the generator.
func (g *Generator) Seeds() Seeds {
	return g.seeds
}

// newField builds a single-octave coherent noise field. Octaves are summed
// explicitly by the callers so each can carry its own weight.
func newField(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(2, 2, 1, seed)
}

func sample(field *perlin.Perlin, x, y, wavelength float64) float32 {
	return float32(field.Noise2D(x/wavelength, y/wavelength))
}
