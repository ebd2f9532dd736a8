// Package world keeps the chunk entities that make up the streamed terrain.
package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/game/entity"
)

// Handle is a stable reference to a chunk in a Store. A handle whose chunk
// has been destroyed never resolves again, even after its slot is reused.
type Handle struct {
	index      uint32
	generation uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.generation)
}

type slot struct {
	chunk      *entity.Chunk
	generation uint32
}

// Store is an arena of chunk entities indexed by handle.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Create adds an empty chunk and returns its handle.
func (s *Store) Create(coord terrain.Coord, transform mgl32.Mat4) Handle {
	chunk := entity.NewChunk(coord, transform)
	s.live++

	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].chunk = chunk
		return Handle{index: idx, generation: s.slots[idx].generation}
	}

	s.slots = append(s.slots, slot{chunk: chunk})
	return Handle{index: uint32(len(s.slots) - 1)}
}

// Destroy removes the chunk behind h. It reports false for stale handles.
func (s *Store) Destroy(h Handle) bool {
	if _, ok := s.Get(h); !ok {
		return false
	}
	sl := &s.slots[h.index]
	sl.chunk = nil
	sl.generation++
	s.free = append(s.free, h.index)
	s.live--
	return true
}

// Get resolves a handle to its chunk.
func (s *Store) Get(h Handle) (*entity.Chunk, bool) {
	if int(h.index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.index]
	if sl.chunk == nil || sl.generation != h.generation {
		return nil, false
	}
	return sl.chunk, true
}

// State returns the lifecycle state of the chunk behind h.
// Stale handles report ChunkDestroyed.
func (s *Store) State(h Handle) entity.ChunkState {
	c, ok := s.Get(h)
	if !ok {
		return entity.ChunkDestroyed
	}
	return c.State()
}

// Each calls fn for every live chunk in slot order.
func (s *Store) Each(fn func(Handle, *entity.Chunk)) {
	for i, sl := range s.slots {
		if sl.chunk == nil {
			continue
		}
		fn(Handle{index: uint32(i), generation: sl.generation}, sl.chunk)
	}
}

// Len returns the number of live chunks.
func (s *Store) Len() int {
	return s.live
}
