package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// HeightField turns the raw noise field into world-space terrain heights.
// It is stateless apart from the immutable noise table, so HeightAt is a
// pure function of (seed, params, position) and can be sampled from any
// goroutine without locking.
type HeightField struct {
	noise  *Noise
	params NoiseParams
}

// NewHeightField seeds a noise field for the given parameters. The
// parameters must already be validated.
func NewHeightField(params NoiseParams) *HeightField {
	return &HeightField{
		noise:  NewNoise(params.Seed),
		params: params,
	}
}

// Params returns the parameters this field was built with.
func (hf *HeightField) Params() NoiseParams {
	return hf.params
}

// HeightAt computes the terrain surface height at world (x,z).
// Because the result depends only on world position, vertices shared
// between adjacent chunks evaluate bit-identically — chunk meshes never
// develop seams.
func (hf *HeightField) HeightAt(x, z float64) float64 {
	p := hf.params
	n := hf.noise.OctaveNoise2D(x*p.Frequency, z*p.Frequency, p.Octaves, p.Persistence, p.Lacunarity)
	return n*p.Amplitude + p.BaseHeight
}

// Normal estimates the surface normal at world (x,z) by central finite
// differences with the given step. Step should match the mesh vertex
// spacing for shading consistent with the generated geometry; smaller
// steps trade 4 extra height samples for local accuracy.
func (hf *HeightField) Normal(x, z, step float64) mgl64.Vec3 {
	hx := hf.HeightAt(x+step, z) - hf.HeightAt(x-step, z)
	hz := hf.HeightAt(x, z+step) - hf.HeightAt(x, z-step)

	tx := mgl64.Vec3{2 * step, hx, 0}
	tz := mgl64.Vec3{0, hz, 2 * step}

	n := tz.Cross(tx)
	if n.Len() < 1e-12 {
		// Degenerate or numerically flat; point straight up.
		return mgl64.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
