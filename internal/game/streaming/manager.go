// Package streaming creates and destroys terrain chunks around a moving viewer.
//
// Each tick runs four passes in a fixed order:
//
//  1. Load: every coordinate within the load distance of the viewer chunk
//     that is not indexed gets an empty chunk entity.
//  2. SelectUnload: indexed chunks farther than the load distance plus one
//     are marked for unload and leave the index. The extra ring keeps a viewer pacing along a
//     chunk border from churning the same chunks every tick.
//  3. Generate: unmarked chunks without a heightmap are generated and handed
//     to the renderer. Missing biome images defer generation to a later tick.
//  4. Sweep: marked chunks lose their visual and entity.
package streaming

import (
	"cmp"
	"errors"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/scene"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/game/entity"
	"github.com/Faultbox/midgard-terrain/internal/game/world"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// LoadDistance is the default Chebyshev radius, in chunks, of the load window.
const LoadDistance = 1

// Viewer provides the position chunks are streamed around.
type Viewer interface {
	CurrentWorldPosition() mgl32.Vec3
}

// Renderer turns generated chunks into visual objects.
type Renderer interface {
	CreateVisual(mesh *terrain.Mesh, material scene.Material, transform mgl32.Mat4) entity.VisualHandle
	DestroyVisual(h entity.VisualHandle)
}

// Report summarizes one tick.
type Report struct {
	Viewer    terrain.Coord
	Loaded    int    // Entities created
	Marked    int    // Entities tagged for unload
	Generated int    // Chunks generated
	Deferred  int    // Chunks waiting for biome images
	Missing   string // Biome image that blocked generation, if any
	Swept     int    // Entities destroyed
}

// Option configures a Manager.
type Option func(*Manager)

// WithLoadDistance sets the load window radius in chunks.
func WithLoadDistance(d int) Option {
	return func(m *Manager) {
		if d >= 0 {
			m.loadDistance = d
		}
	}
}

// WithLogger replaces the manager's logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// Manager owns the streaming index, the coordinate to entity mapping of
// every live chunk. It is not safe for concurrent use.
type Manager struct {
	store    *world.Store
	gen      *terrain.Generator
	assets   terrain.AssetProvider
	renderer Renderer

	loadDistance int
	index        map[terrain.Coord]world.Handle
	viewer       terrain.Coord
	log          *zap.Logger
}

// NewManager creates a manager streaming chunks into store.
func NewManager(store *world.Store, gen *terrain.Generator, assets terrain.AssetProvider, renderer Renderer, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		gen:          gen,
		assets:       assets,
		renderer:     renderer,
		loadDistance: LoadDistance,
		index:        make(map[terrain.Coord]world.Handle),
		log:          logger.Named("streaming"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tick runs one full streaming pass for the viewer's current position.
func (m *Manager) Tick(v Viewer) Report {
	var r Report
	r.Loaded = m.Load(v.CurrentWorldPosition())
	r.Viewer = m.viewer
	r.Marked = m.SelectUnload()
	r.Generated, r.Deferred, r.Missing = m.Generate()
	r.Swept = m.Sweep()

	if r.Loaded > 0 || r.Swept > 0 || r.Generated > 0 {
		m.log.Debug("tick",
			zap.Stringer("viewer", r.Viewer),
			zap.Int("loaded", r.Loaded),
			zap.Int("marked", r.Marked),
			zap.Int("generated", r.Generated),
			zap.Int("deferred", r.Deferred),
			zap.Int("swept", r.Swept),
			zap.Int("live", len(m.index)),
		)
	}
	return r
}

// Load updates the viewer chunk from pos and creates an empty entity for
// every unindexed coordinate in the load window. It returns how many were
// created.
func (m *Manager) Load(pos mgl32.Vec3) int {
	m.viewer = terrain.CoordAt(pos.X(), pos.Z())

	created := 0
	d := m.loadDistance
	for dy := -d; dy <= d; dy++ {
		for dx := -d; dx <= d; dx++ {
			c := m.viewer.Add(dx, dy)
			if _, ok := m.index[c]; ok {
				continue
			}
			h := m.store.Create(c, c.Transform())
			m.index[c] = h
			created++
			m.log.Debug("chunk created", zap.Stringer("coord", c), zap.Stringer("handle", h))
		}
	}
	return created
}

// SelectUnload marks every indexed chunk outside the retention radius and
// drops its coordinate from the index; the entity itself lives until Sweep.
// It must run after Load so a chunk created this tick is never marked.
func (m *Manager) SelectUnload() int {
	marked := 0
	for c, h := range m.index {
		if c.Chebyshev(m.viewer) <= m.loadDistance+1 {
			continue
		}
		delete(m.index, c)
		chunk, ok := m.store.Get(h)
		if !ok {
			continue
		}
		chunk.MarkForUnload()
		marked++
		m.log.Debug("chunk marked for unload", zap.Stringer("coord", c), zap.Stringer("handle", h))
	}
	return marked
}

// Generate builds every indexed chunk that is neither generated nor marked
// for unload. When a biome image is missing nothing more is generated this
// tick; deferred counts the chunks left waiting and missing names the image.
func (m *Manager) Generate() (generated, deferred int, missing string) {
	for _, c := range m.Coords() {
		chunk, ok := m.store.Get(m.index[c])
		if !ok || chunk.Generated() || chunk.MarkedForUnload() {
			continue
		}

		if missing != "" {
			deferred++
			continue
		}

		out, err := m.gen.Generate(c, m.assets)
		if err != nil {
			var assetErr *terrain.AssetError
			if errors.As(err, &assetErr) {
				missing = assetErr.Name
			} else {
				missing = err.Error()
			}
			deferred++
			m.log.Debug("chunk generation deferred", zap.String("asset", missing), zap.Error(err))
			continue
		}

		if !chunk.Commit(out) {
			continue
		}
		if m.renderer != nil {
			chunk.Visual = m.renderer.CreateVisual(out.Mesh, scene.TerrainMaterial(out.Texture), chunk.Transform)
		}
		generated++
		seed := chunk.Seed()
		m.log.Debug("chunk generated",
			zap.Stringer("coord", c),
			zap.Float32("seed_x", seed.X),
			zap.Float32("seed_y", seed.Y),
			zap.Stringer("visual", chunk.Visual),
		)
	}
	return generated, deferred, missing
}

// Sweep destroys every entity marked for unload along with its visual.
func (m *Manager) Sweep() int {
	var marked []world.Handle
	m.store.Each(func(h world.Handle, chunk *entity.Chunk) {
		if chunk.MarkedForUnload() {
			marked = append(marked, h)
		}
	})

	for _, h := range marked {
		chunk, _ := m.store.Get(h)
		if chunk.Visual != uuid.Nil && m.renderer != nil {
			m.renderer.DestroyVisual(chunk.Visual)
		}
		m.store.Destroy(h)
		m.log.Debug("chunk unloaded", zap.Stringer("coord", chunk.Coord), zap.Stringer("handle", h))
	}
	return len(marked)
}

// ViewerChunk returns the chunk coordinate the viewer was last seen in.
func (m *Manager) ViewerChunk() terrain.Coord {
	return m.viewer
}

// LoadDistance returns the load window radius in chunks.
func (m *Manager) LoadDistance() int {
	return m.loadDistance
}

// Lookup returns the handle of the chunk indexed at c.
func (m *Manager) Lookup(c terrain.Coord) (world.Handle, bool) {
	h, ok := m.index[c]
	return h, ok
}

// Chunk returns the entity indexed at c.
func (m *Manager) Chunk(c terrain.Coord) (*entity.Chunk, bool) {
	h, ok := m.index[c]
	if !ok {
		return nil, false
	}
	return m.store.Get(h)
}

// State returns the lifecycle state of the chunk at c. Coordinates that are
// not indexed report ChunkDestroyed and false.
func (m *Manager) State(c terrain.Coord) (entity.ChunkState, bool) {
	h, ok := m.index[c]
	if !ok {
		return entity.ChunkDestroyed, false
	}
	return m.store.State(h), true
}

// Coords returns the indexed coordinates ordered by row, then column.
func (m *Manager) Coords() []terrain.Coord {
	coords := make([]terrain.Coord, 0, len(m.index))
	for c := range m.index {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b terrain.Coord) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return coords
}

// Len returns the number of indexed chunks.
func (m *Manager) Len() int {
	return len(m.index)
}
