// Package export renders terrain into images for inspection outside the
// interactive viewer.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"

	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

// Options controls the rendered heightmap.
type Options struct {
	// OriginX, OriginZ is the world position of the top-left pixel.
	OriginX, OriginZ float64
	// Size is the sampled width and height in pixels; each pixel advances
	// one world unit.
	Size int
	// Shade mixes in hillshading from the surface normals.
	Shade bool
	// Grain overlays a Perlin paper-grain texture.
	Grain bool
	// Scale resamples the output by an integer factor (1 = native).
	Scale int
}

// grainSeed keeps the overlay stable across runs; it deliberately does not
// follow the terrain seed so regenerating terrain keeps the same paper.
const grainSeed = 1337

// WriteHeightmapPNG samples the store's heightfield over a world-space
// square and writes a grayscale PNG. Heights map linearly from
// baseHeight-amplitude (black) to baseHeight+amplitude (white).
func WriteHeightmapPNG(w io.Writer, st *terrain.Store, opts Options) error {
	if opts.Size <= 0 {
		return fmt.Errorf("export: size must be positive, got %d", opts.Size)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	hf := st.HeightField()
	p := hf.Params()
	lo := p.BaseHeight - p.Amplitude
	span := 2 * p.Amplitude

	// Light from the northwest, the usual hillshade convention.
	light := mgl64.Vec3{-1, 1.2, -1}.Normalize()

	var grain *perlin.Perlin
	if opts.Grain {
		grain = perlin.NewPerlin(2.0, 2.0, 3, grainSeed)
	}

	img := image.NewGray(image.Rect(0, 0, opts.Size, opts.Size))
	for py := 0; py < opts.Size; py++ {
		for px := 0; px < opts.Size; px++ {
			wx := opts.OriginX + float64(px)
			wz := opts.OriginZ + float64(py)

			v := 0.5
			if span > 0 {
				v = (hf.HeightAt(wx, wz) - lo) / span
			}

			if opts.Shade {
				n := hf.Normal(wx, wz, 1.0)
				shade := math.Max(0, n.Dot(light))
				v = 0.35*v + 0.65*v*shade + 0.15*shade
			}

			if grain != nil {
				// Small-amplitude jitter, same mapping the watercolor
				// pipeline uses for paper texture.
				g := grain.Noise2D(wx/24.0, wz/24.0)
				v += g * 0.04
			}

			v = math.Max(0, math.Min(1, v))
			img.SetGray(px, py, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}

	var out image.Image = img
	if opts.Scale > 1 {
		scaled := image.NewGray(image.Rect(0, 0, opts.Size*opts.Scale, opts.Size*opts.Scale))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		out = scaled
	}

	return png.Encode(w, out)
}
