package terrain

import (
	"math"
	"sync"

	"github.com/sundjerbob/ww3-sub001/internal/profiling"
)

// ChunkCoord identifies a chunk by its integer grid position. Used
// directly as the map key; a struct key hashes without the allocation a
// formatted string key would cost.
type ChunkCoord struct {
	X, Z int32
}

// Store owns every generated chunk mesh. Entries are created lazily as
// ungenerated placeholders, filled exactly once, and only ever removed
// all at once — by SetParams or Clear. Callers hold non-owning references
// that go stale on either call.
type Store struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*MeshData

	hf          *HeightField
	chunkParams ChunkParams
}

// NewStore validates the parameters and seeds the heightfield.
func NewStore(np NoiseParams, cp ChunkParams) (*Store, error) {
	if err := np.Validate(); err != nil {
		return nil, err
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		chunks:      make(map[ChunkCoord]*MeshData),
		hf:          NewHeightField(np),
		chunkParams: cp,
	}, nil
}

// HeightField exposes the current heightfield for direct sampling.
func (s *Store) HeightField() *HeightField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hf
}

// ChunkParams returns the current chunk layout parameters.
func (s *Store) ChunkParams() ChunkParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunkParams
}

// GetOrCreate returns the chunk entry at (chunkX, chunkZ), inserting an
// ungenerated placeholder if none exists. It never triggers generation.
func (s *Store) GetOrCreate(chunkX, chunkZ int32) *MeshData {
	coord := ChunkCoord{X: chunkX, Z: chunkZ}

	s.mu.RLock()
	chunk, exists := s.chunks[coord]
	s.mu.RUnlock()
	if exists {
		return chunk
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Double-check: another goroutine may have inserted while we waited.
	if existing, ok := s.chunks[coord]; ok {
		return existing
	}
	chunk = &MeshData{X: chunkX, Z: chunkZ}
	s.chunks[coord] = chunk
	return chunk
}

// Get returns the chunk entry at (chunkX, chunkZ), or nil if it has never
// been looked up.
func (s *Store) Get(chunkX, chunkZ int32) *MeshData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks[ChunkCoord{X: chunkX, Z: chunkZ}]
}

// Has reports whether an entry exists without creating one.
func (s *Store) Has(chunkX, chunkZ int32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.chunks[ChunkCoord{X: chunkX, Z: chunkZ}]
	return ok
}

// IsGenerated reports whether the chunk at (chunkX, chunkZ) has been
// built. The flag and the buffers are installed under the store lock, so
// observing true here also publishes the buffers: a caller that sees
// IsGenerated may read the entry's Vertices and Indices from any
// goroutine, since they never change again.
func (s *Store) IsGenerated(chunkX, chunkZ int32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chunks[ChunkCoord{X: chunkX, Z: chunkZ}]
	return ok && c.Generated
}

// Len returns the number of entries, generated or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Generate builds the mesh for (chunkX, chunkZ) if it has not been built
// yet. Calling it again is a no-op: the existing buffers are untouched.
// Distinct chunks may be generated concurrently; the heavy sampling runs
// outside the lock and only installation is serialized.
func (s *Store) Generate(chunkX, chunkZ int32) *MeshData {
	defer profiling.Track("terrain.Generate")()

	chunk := s.GetOrCreate(chunkX, chunkZ)

	s.mu.RLock()
	done := chunk.Generated
	hf := s.hf
	cp := s.chunkParams
	s.mu.RUnlock()
	if done {
		return chunk
	}

	built := BuildMesh(hf, cp, chunkX, chunkZ)

	s.mu.Lock()
	defer s.mu.Unlock()
	// First build wins; a concurrent duplicate is discarded so the stored
	// buffers never change after Generated flips.
	if !chunk.Generated {
		chunk.Vertices = built.Vertices
		chunk.Indices = built.Indices
		chunk.Generated = true
	}
	return chunk
}

// ChunkAtWorldPos returns the entry for the chunk containing the world
// position, creating a placeholder if needed. Uses true floor division:
// with chunkSize=16, worldX=-1 belongs to chunk -1, not 0.
func (s *Store) ChunkAtWorldPos(worldX, worldZ float64) *MeshData {
	s.mu.RLock()
	size := s.chunkParams.ChunkSize
	s.mu.RUnlock()

	chunkX := int32(math.Floor(worldX / size))
	chunkZ := int32(math.Floor(worldZ / size))
	return s.GetOrCreate(chunkX, chunkZ)
}

// HeightAt evaluates the terrain height directly. It bypasses the mesh
// cache entirely — placement and physics queries do not need a generated
// chunk.
func (s *Store) HeightAt(worldX, worldZ float64) float64 {
	return s.HeightField().HeightAt(worldX, worldZ)
}

// SetParams replaces both parameter sets, reseeds the noise field and
// drops every cached chunk. There is no partial invalidation: any
// previously returned reference is stale after this call.
func (s *Store) SetParams(np NoiseParams, cp ChunkParams) error {
	if err := np.Validate(); err != nil {
		return err
	}
	if err := cp.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hf = NewHeightField(np)
	s.chunkParams = cp
	s.chunks = make(map[ChunkCoord]*MeshData)
	return nil
}

// Clear drops every cached chunk without touching the parameters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = make(map[ChunkCoord]*MeshData)
}
