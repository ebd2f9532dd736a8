// Package terrain generates seamless heightmap chunks: region blending,
// elevation, slope, biome textures and smoothed meshes.
package terrain

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh holds a triangulated chunk surface ready for upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32 // triangle list
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Chunk is the full artifact set generated for one coordinate.
type Chunk struct {
	Coord     Coord
	Seed      Seed
	Regions   Regions
	Heightmap *Grid
	Slope     *Grid
	Texture   *image.RGBA
	Mesh      *Mesh
}
