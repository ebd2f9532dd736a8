package terrain

// Grid is a row-major ChunkSide x ChunkSide array of samples.
// Sample (x, y) lives at index x + y*ChunkSide.
type Grid [ChunkArea]float32

// Index returns the flat index of sample (x, y).
func Index(x, y int) int {
	return x + y*ChunkSide
}

// At returns sample (x, y).
func (g *Grid) At(x, y int) float32 {
	return g[Index(x, y)]
}

// Set stores v at sample (x, y).
func (g *Grid) Set(x, y int, v float32) {
	g[Index(x, y)] = v
}

// Column returns a copy of column x, ordered by y.
func (g *Grid) Column(x int) []float32 {
	col := make([]float32, ChunkSide)
	for y := range ChunkSide {
		col[y] = g.At(x, y)
	}
	return col
}

// Row returns a copy of row y, ordered by x.
func (g *Grid) Row(y int) []float32 {
	row := make([]float32, ChunkSide)
	copy(row, g[Index(0, y):Index(0, y)+ChunkSide])
	return row
}

// MinMax returns the smallest and largest sample.
func (g *Grid) MinMax() (lo, hi float32) {
	lo, hi = g[0], g[0]
	for _, v := range g {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// clampIndex keeps a grid-local index inside [0, ChunkSide-1].
func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > ChunkSide-1 {
		return ChunkSide - 1
	}
	return i
}

// lerp blends a toward b. t=0 yields a exactly and t=1 yields b exactly.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
