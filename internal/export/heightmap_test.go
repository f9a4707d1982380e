package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

func newTestStore(t *testing.T) *terrain.Store {
	t.Helper()
	st, err := terrain.NewStore(terrain.DefaultNoiseParams(), terrain.DefaultChunkParams())
	require.NoError(t, err)
	return st
}

func TestWriteHeightmapPNGDimensions(t *testing.T) {
	st := newTestStore(t)

	var buf bytes.Buffer
	err := WriteHeightmapPNG(&buf, st, Options{Size: 64})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestWriteHeightmapPNGScaled(t *testing.T) {
	st := newTestStore(t)

	var buf bytes.Buffer
	err := WriteHeightmapPNG(&buf, st, Options{Size: 32, Scale: 2, Shade: true, Grain: true})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestWriteHeightmapPNGDeterministic(t *testing.T) {
	st := newTestStore(t)
	opts := Options{OriginX: -32, OriginZ: -32, Size: 48, Shade: true, Grain: true}

	var a, b bytes.Buffer
	require.NoError(t, WriteHeightmapPNG(&a, st, opts))
	require.NoError(t, WriteHeightmapPNG(&b, st, opts))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteHeightmapPNGSeedChangesOutput(t *testing.T) {
	st := newTestStore(t)
	opts := Options{Size: 48}

	var a bytes.Buffer
	require.NoError(t, WriteHeightmapPNG(&a, st, opts))

	np := terrain.DefaultNoiseParams()
	np.Seed = 5555
	require.NoError(t, st.SetParams(np, terrain.DefaultChunkParams()))

	var b bytes.Buffer
	require.NoError(t, WriteHeightmapPNG(&b, st, opts))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestWriteHeightmapPNGRejectsBadSize(t *testing.T) {
	st := newTestStore(t)
	var buf bytes.Buffer
	assert.Error(t, WriteHeightmapPNG(&buf, st, Options{Size: 0}))
}
