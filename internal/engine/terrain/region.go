package terrain

// Region sampling wavelengths and the soft-threshold gain.
const (
	ravineWavelength = 70.0
	cliffWavelength  = 700.0
	fiordWavelength  = 700.0
	regionGain       = 10.0
)

// Region holds the biome-blend coefficients of one chunk, each in [0,1].
// A coefficient of 1 leaves the heightmap untouched by the matching shaping
// function; 0 applies the shaping fully.
type Region struct {
	Ravine float32
	Cliff  float32
	Fiord  float32
}

// Corners of a Regions block.
const (
	RegionSelf = iota
	RegionX
	RegionY
	RegionXY
)

// Regions holds the descriptors of a chunk and its +x, +y and +x+y
// neighbours, in that order.
type Regions [4]Region

// Region returns the descriptor of the chunk with the given seed.
func (g *Generator) Region(seed Seed) Region {
	x := float64(seed.X) * ChunkSide
	y := float64(seed.Y) * ChunkSide
	return Region{
		Ravine: softThreshold(sample(g.ravine, x, y, ravineWavelength)),
		Cliff:  softThreshold(sample(g.cliff, x, y, cliffWavelength)),
		Fiord:  softThreshold(sample(g.fiord, x, y, fiordWavelength)),
	}
}

// Regions returns the descriptors needed to build the chunk with the given seed.
func (g *Generator) Regions(seed Seed) Regions {
	return Regions{
		RegionSelf: g.Region(seed),
		RegionX:    g.Region(Seed{X: seed.X + 1, Y: seed.Y}),
		RegionY:    g.Region(Seed{X: seed.X, Y: seed.Y + 1}),
		RegionXY:   g.Region(Seed{X: seed.X + 1, Y: seed.Y + 1}),
	}
}

// Blend bilinearly interpolates the four corner descriptors at the
// normalized chunk position (nx, ny). (0,0) is this chunk, (1,0) its +x
// neighbour, so a chunk's far edge matches its neighbour's near edge.
func (r *Regions) Blend(nx, ny float32) Region {
	blend := func(self, x, y, xy float32) float32 {
		return lerp(lerp(self, x, nx), lerp(y, xy, nx), ny)
	}
	return Region{
		Ravine: blend(r[RegionSelf].Ravine, r[RegionX].Ravine, r[RegionY].Ravine, r[RegionXY].Ravine),
		Cliff:  blend(r[RegionSelf].Cliff, r[RegionX].Cliff, r[RegionY].Cliff, r[RegionXY].Cliff),
		Fiord:  blend(r[RegionSelf].Fiord, r[RegionX].Fiord, r[RegionY].Fiord, r[RegionXY].Fiord),
	}
}

// softThreshold turns a smooth noise value into a mostly-zero mask that
// ramps to 1 where the noise rises above 0.5.
func softThreshold(v float32) float32 {
	v -= 0.5
	return min(max(v, 0)*regionGain, 1)
}
