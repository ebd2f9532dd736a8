package terrain

// Slope derives a roughness grid from a heightmap. Each sample holds the
// largest absolute deviation between its height and the extremes of the 2x2
// neighbourhood starting at it.
//
// The last row and column have no forward neighbourhood and stay zero, so
// chunk edges always classify as low-slope terrain.
func Slope(h *Grid) *Grid {
	slope := new(Grid)
	for y := range ChunkSide - 1 {
		for x := range ChunkSide - 1 {
			c := h.At(x, y)
			hx := h.At(x+1, y)
			hy := h.At(x, y+1)
			hxy := h.At(x+1, y+1)

			hi := max(c, hx, hy, hxy)
			lo := min(c, hx, hy, hxy)
			slope.Set(x, y, max(abs32(c-hi), abs32(c-lo)))
		}
	}
	return slope
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
