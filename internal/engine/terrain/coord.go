package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Coord identifies a chunk in chunk-size units.
type Coord struct {
	X, Y int
}

// Seed is the generation parameter of a chunk: its coordinate as floats.
type Seed struct {
	X, Y float32
}

// Seed returns the generation seed for the chunk.
func (c Coord) Seed() Seed {
	return Seed{X: float32(c.X), Y: float32(c.Y)}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Chebyshev returns the chessboard distance between two coordinates.
func (c Coord) Chebyshev(other Coord) int {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

// Transform returns the world transform of the chunk origin.
// Chunk Y maps to world Z; the terrain is laid out on the XZ plane.
func (c Coord) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(ChunkSpacing*float32(c.X), 0, ChunkSpacing*float32(c.Y))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordAt returns the chunk containing the world-space point (x, z).
func CoordAt(x, z float32) Coord {
	return Coord{
		X: int(math.Floor(float64(x / ChunkSpacing))),
		Y: int(math.Floor(float64(z / ChunkSpacing))),
	}
}

// CoordOfTransform recovers the chunk coordinate from a chunk transform.
func CoordOfTransform(t mgl32.Mat4) Coord {
	pos := t.Col(3)
	return Coord{
		X: int(math.Round(float64(pos.X() / ChunkSpacing))),
		Y: int(math.Round(float64(pos.Z() / ChunkSpacing))),
	}
}
