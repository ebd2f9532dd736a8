package terrain

// Base elevation octaves: wavelength in samples and weight.
var heightOctaves = [...]struct {
	wavelength float64
	weight     float32
}{
	{2, 0.4},
	{20, 2.0},
	{200, 30},
}

// Heightmap builds the elevation grid of the chunk with the given seed.
// regions must come from Regions(seed); the neighbour descriptors let
// samples on the chunk's far edges match the neighbouring chunks exactly.
func (g *Generator) Heightmap(seed Seed, regions *Regions) *Grid {
	grid := new(Grid)

	ox := float64(seed.X) * (ChunkSide - 1)
	oy := float64(seed.Y) * (ChunkSide - 1)

	for y := range ChunkSide {
		for x := range ChunkSide {
			wx := ox + float64(x)
			wy := oy + float64(y)

			var h float32
			for _, o := range heightOctaves {
				h += sample(g.height, wx, wy, o.wavelength) * o.weight
			}

			nx := float32(x) / (ChunkSide - 1)
			ny := float32(y) / (ChunkSide - 1)
			local := regions.Blend(nx, ny)

			h = lerp(ravine(h), h, local.Ravine)
			h = lerp(cliffs(h), h, local.Cliff)
			h = lerp(fiords(h), h, local.Fiord)

			grid.Set(x, y, max(h, HeightFloor))
		}
	}
	return grid
}

// ravine cuts a trench into the 5..7 band.
func ravine(h float32) float32 {
	if h > 5 && h < 7 {
		return h - 6.7
	}
	return h
}

// cliffs raises everything above 10.
func cliffs(h float32) float32 {
	if h > 10 {
		return h + 4
	}
	return h
}

// fiords sinks everything below 10.
func fiords(h float32) float32 {
	if h < 10 {
		return h - 9
	}
	return h
}
