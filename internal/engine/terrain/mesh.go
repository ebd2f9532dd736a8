package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildMesh converts a heightmap into a smooth-shaded triangle mesh.
// Meshes of neighbouring chunks only line up when the chunks share their
// border samples and are placed ChunkSpacing apart.
func BuildMesh(h *Grid) *Mesh {
	vertices := make([]Vertex, ChunkArea)

	bounds := Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}

	for z := range ChunkSide {
		for x := range ChunkSide {
			i := Index(x, z)
			pos := mgl32.Vec3{float32(x) * VoxelScale, h[i] * VoxelScale, float32(z) * VoxelScale}
			vertices[i] = Vertex{
				Position: pos,
				// The whole texture is stretched over the chunk.
				TexCoord: mgl32.Vec2{float32(x) / ChunkSide, float32(z) / ChunkSide},
			}
			updateBounds(&bounds, pos)
		}
	}

	indices := make([]uint32, 0, (ChunkSide-1)*(ChunkSide-1)*6)
	for z := range ChunkSide - 1 {
		for x := range ChunkSide - 1 {
			i := uint32(Index(x, z))
			nx := uint32(Index(x+1, z))
			nz := uint32(Index(x, z+1))
			nxz := uint32(Index(x+1, z+1))
			indices = append(indices,
				nx, i, nz,
				nx, nz, nxz,
			)
		}
	}

	accumulateNormals(vertices, indices)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// accumulateNormals sums each triangle's face normal into its three vertices
// and normalizes the result, giving smooth shading across the grid.
func accumulateNormals(vertices []Vertex, indices []uint32) {
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]

		edge1 := vertices[b].Position.Sub(vertices[a].Position)
		edge2 := vertices[c].Position.Sub(vertices[a].Position)
		n := normalize(edge1.Cross(edge2))

		vertices[a].Normal = vertices[a].Normal.Add(n)
		vertices[b].Normal = vertices[b].Normal.Add(n)
		vertices[c].Normal = vertices[c].Normal.Add(n)
	}

	for i := range vertices {
		vertices[i].Normal = normalize(vertices[i].Normal)
	}
}

// Helper functions

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for axis := range 3 {
		b.Min[axis] = min(b.Min[axis], p[axis])
		b.Max[axis] = max(b.Max[axis], p[axis])
	}
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 0.0001 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize()
}
