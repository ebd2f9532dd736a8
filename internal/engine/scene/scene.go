// Package scene keeps the visual objects built from generated chunks.
// It renders nothing itself; it tracks what a renderer would draw and can
// dump chunk textures for inspection.
package scene

import (
	"image"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/game/entity"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Material describes how a chunk surface is shaded.
type Material struct {
	Texture             *image.RGBA
	PerceptualRoughness float32
	Metallic            float32
	Unlit               bool
}

// TerrainMaterial returns the material used for terrain chunks.
func TerrainMaterial(tex *image.RGBA) Material {
	return Material{
		Texture:             tex,
		PerceptualRoughness: 0.9,
		Metallic:            0,
		Unlit:               false,
	}
}

// Visual is a drawable chunk surface.
type Visual struct {
	Handle    entity.VisualHandle
	Mesh      *terrain.Mesh
	Material  Material
	Transform mgl32.Mat4
}

// Stats counts visual lifecycle events.
type Stats struct {
	Live      int
	Created   int
	Destroyed int
}

// Scene is a registry of visuals standing in for a GPU renderer.
type Scene struct {
	visuals  map[entity.VisualHandle]*Visual
	stats    Stats
	exporter *debug.Exporter
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		visuals: make(map[entity.VisualHandle]*Visual),
	}
}

// SetExportDir makes the scene write every new chunk texture as a PNG into
// dir. An empty dir disables exporting.
func (s *Scene) SetExportDir(dir string) {
	if dir == "" {
		s.exporter = nil
		return
	}
	s.exporter = debug.NewExporter(dir, "chunk")
}

// CreateVisual registers a visual and returns its handle.
func (s *Scene) CreateVisual(mesh *terrain.Mesh, material Material, transform mgl32.Mat4) entity.VisualHandle {
	h := uuid.New()
	s.visuals[h] = &Visual{
		Handle:    h,
		Mesh:      mesh,
		Material:  material,
		Transform: transform,
	}
	s.stats.Created++

	if s.exporter != nil && material.Texture != nil {
		coord := terrain.CoordOfTransform(transform)
		if path, err := s.exporter.ExportChunk(coord, material.Texture); err != nil {
			logger.Warn("chunk texture export failed", zap.Stringer("chunk", coord), zap.Error(err))
		} else {
			logger.Debug("chunk texture exported", zap.Stringer("chunk", coord), zap.String("path", path))
		}
	}
	return h
}

// DestroyVisual removes a visual. Unknown handles are ignored.
func (s *Scene) DestroyVisual(h entity.VisualHandle) {
	if _, ok := s.visuals[h]; !ok {
		return
	}
	delete(s.visuals, h)
	s.stats.Destroyed++
}

// Visual looks up a visual by handle.
func (s *Scene) Visual(h entity.VisualHandle) (*Visual, bool) {
	v, ok := s.visuals[h]
	return v, ok
}

// Visuals returns all live visuals ordered by chunk coordinate.
func (s *Scene) Visuals() []*Visual {
	out := make([]*Visual, 0, len(s.visuals))
	for _, v := range s.visuals {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a := terrain.CoordOfTransform(out[i].Transform)
		b := terrain.CoordOfTransform(out[j].Transform)
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// Stats returns the visual counters.
func (s *Scene) Stats() Stats {
	st := s.stats
	st.Live = len(s.visuals)
	return st
}
