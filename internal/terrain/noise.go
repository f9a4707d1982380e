package terrain

import (
	"math"
	"math/rand"
)

// Seeded gradient noise over a 512-entry permutation table.
// Same seed yields the same table, so every sample is reproducible
// across runs and across machines.

// Noise is a deterministic gradient-noise field. Immutable after
// construction: the permutation table is a pure function of the seed.
type Noise struct {
	perm [512]int
}

// NewNoise builds the permutation table for the given seed.
func NewNoise(seed int64) *Noise {
	n := &Noise{}

	var table [256]int
	for i := range table {
		table[i] = i
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})

	// Duplicate so corner hashing never needs an index wrap.
	for i, v := range table {
		n.perm[i] = v
		n.perm[256+i] = v
	}
	return n
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of 12 gradient directions from the low hash bits and
// returns its dot product with (x,y,z). The branch structure matters:
// changing it changes every sample for a given seed.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise3D samples the field at (x,y,z). Output is roughly in [-1,1] and
// is finite for any finite input, negative coordinates included.
func (n *Noise) Noise3D(x, y, z float64) float64 {
	// Unit cube containing the point. math.Floor, not truncation, so
	// negative coordinates land in the correct cell.
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners.
	a := n.perm[xi] + yi
	aa := n.perm[a] + zi
	ab := n.perm[a+1] + zi
	b := n.perm[xi+1] + yi
	ba := n.perm[b] + zi
	bb := n.perm[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u,
				grad(n.perm[aa], x, y, z),
				grad(n.perm[ba], x-1, y, z)),
			lerp(u,
				grad(n.perm[ab], x, y-1, z),
				grad(n.perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u,
				grad(n.perm[aa+1], x, y, z-1),
				grad(n.perm[ba+1], x-1, y, z-1)),
			lerp(u,
				grad(n.perm[ab+1], x, y-1, z-1),
				grad(n.perm[bb+1], x-1, y-1, z-1))))
}

// Noise2D samples the field on the y=0 plane.
func (n *Noise) Noise2D(x, z float64) float64 {
	return n.Noise3D(x, 0, z)
}

// OctaveNoise2D sums octaves of Noise2D, scaling amplitude by persistence
// and frequency by lacunarity each octave, then normalizes by the summed
// amplitude so the range stays comparable regardless of octave count.
//
// octaves must be >= 1; this is enforced at the parameter validation
// boundary, so a violation here is a programming error and panics.
func (n *Noise) OctaveNoise2D(x, z float64, octaves int, persistence, lacunarity float64) float64 {
	if octaves < 1 {
		panic("terrain: OctaveNoise2D requires octaves >= 1")
	}
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for range octaves {
		sum += n.Noise2D(x*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return sum / norm
}
