// Package entity defines the chunk entities of the streamed world.
package entity

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// ChunkState is the lifecycle state of a chunk entity.
type ChunkState uint8

const (
	ChunkEmpty ChunkState = iota
	ChunkGenerated
	ChunkMarkedForUnload
	ChunkDestroyed
)

func (s ChunkState) String() string {
	switch s {
	case ChunkEmpty:
		return "empty"
	case ChunkGenerated:
		return "generated"
	case ChunkMarkedForUnload:
		return "marked-for-unload"
	case ChunkDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("ChunkState(%d)", uint8(s))
}

// VisualHandle identifies a visual object owned by the renderer.
// The zero value means no visual.
type VisualHandle = uuid.UUID

// Chunk is a materialized terrain chunk.
type Chunk struct {
	Coord     terrain.Coord
	Transform mgl32.Mat4

	// Generated artifacts; Heightmap presence means the chunk is generated.
	Heightmap *terrain.Grid
	Slope     *terrain.Grid
	Texture   *image.RGBA
	Mesh      *terrain.Mesh

	// Visual is the renderer object showing this chunk, if any.
	Visual VisualHandle

	unload bool
}

// NewChunk creates an empty chunk at the given coordinate.
func NewChunk(coord terrain.Coord, transform mgl32.Mat4) *Chunk {
	return &Chunk{
		Coord:     coord,
		Transform: transform,
	}
}

// Generated reports whether the chunk's artifacts have been built.
func (c *Chunk) Generated() bool {
	return c.Heightmap != nil
}

// Commit stores generated artifacts. It is a no-op on an already generated
// chunk and reports whether anything was stored.
func (c *Chunk) Commit(gen *terrain.Chunk) bool {
	if c.Generated() || gen == nil {
		return false
	}
	c.Heightmap = gen.Heightmap
	c.Slope = gen.Slope
	c.Texture = gen.Texture
	c.Mesh = gen.Mesh
	return true
}

// MarkForUnload tags the chunk for destruction on the next sweep.
func (c *Chunk) MarkForUnload() {
	c.unload = true
}

// MarkedForUnload reports whether the chunk is waiting to be swept.
func (c *Chunk) MarkedForUnload() bool {
	return c.unload
}

// State returns the lifecycle state of a live chunk.
func (c *Chunk) State() ChunkState {
	switch {
	case c.unload:
		return ChunkMarkedForUnload
	case c.Generated():
		return ChunkGenerated
	default:
		return ChunkEmpty
	}
}

// Seed returns the generation seed of the chunk.
func (c *Chunk) Seed() terrain.Seed {
	return c.Coord.Seed()
}
