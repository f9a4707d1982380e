package terrain

import "fmt"

// NoiseParams drives the noise field seed and the fractal combination.
type NoiseParams struct {
	Seed        int64
	Amplitude   float64
	Frequency   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	BaseHeight  float64
}

// ChunkParams describes the world-space footprint and vertex density of a
// generated chunk.
type ChunkParams struct {
	// ChunkSize is the side length of a chunk in world units.
	ChunkSize float64
	// ChunkResolution is the number of vertices per chunk side.
	ChunkResolution int
}

// Validate rejects parameter combinations that would produce NaN or
// degenerate terrain instead of letting them propagate silently.
func (p NoiseParams) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("terrain: octaves must be >= 1, got %d", p.Octaves)
	}
	return nil
}

// Validate rejects grids that cannot form a mesh.
func (p ChunkParams) Validate() error {
	if p.ChunkResolution < 2 {
		return fmt.Errorf("terrain: chunk resolution must be >= 2, got %d", p.ChunkResolution)
	}
	if p.ChunkSize <= 0 {
		return fmt.Errorf("terrain: chunk size must be positive, got %g", p.ChunkSize)
	}
	return nil
}

// DefaultNoiseParams returns the parameters the tooling starts from.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Seed:        12345,
		Amplitude:   2.0,
		Frequency:   0.1,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		BaseHeight:  -10,
	}
}

// DefaultChunkParams returns a 16-unit chunk sampled at 32 vertices per side.
func DefaultChunkParams() ChunkParams {
	return ChunkParams{
		ChunkSize:       16,
		ChunkResolution: 32,
	}
}
