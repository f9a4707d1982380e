package terrain

// VertexStride is the number of float32 per vertex: position xyz followed
// by normal xyz, interleaved. The layout is consumed verbatim by the GPU
// upload path.
const VertexStride = 6

// MeshData holds the generated geometry for one chunk. Until Generated is
// set the buffers are empty placeholders.
type MeshData struct {
	X, Z     int32
	Vertices []float32
	Indices  []uint32
	// Generated flips to true exactly once, when the buffers are built.
	Generated bool
}

// BuildMesh samples the heightfield across the chunk's world-space
// footprint and assembles interleaved vertex and triangle index buffers.
//
// For resolution R the result has R*R vertices (VertexStride floats each)
// and (R-1)*(R-1)*6 indices. Triangles wind (topLeft, bottomLeft,
// topRight), (topRight, bottomLeft, bottomRight) — counter-clockwise seen
// from +Y, which is what the renderer's back-face culling expects.
func BuildMesh(hf *HeightField, cp ChunkParams, chunkX, chunkZ int32) MeshData {
	res := cp.ChunkResolution
	step := cp.ChunkSize / float64(res-1)

	// World coordinates come from a global grid index, not from
	// startX + x*step: the chunk's last column and its neighbor's first
	// column then share the exact same float, so edge vertices are
	// bit-identical across chunks instead of agreeing only to rounding.
	baseX := int64(chunkX) * int64(res-1)
	baseZ := int64(chunkZ) * int64(res-1)

	vertices := make([]float32, 0, res*res*VertexStride)
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			worldX := float64(baseX+int64(x)) * step
			worldZ := float64(baseZ+int64(z)) * step
			worldY := hf.HeightAt(worldX, worldZ)
			normal := hf.Normal(worldX, worldZ, step)

			vertices = append(vertices,
				float32(worldX), float32(worldY), float32(worldZ),
				float32(normal.X()), float32(normal.Y()), float32(normal.Z()),
			)
		}
	}

	indices := make([]uint32, 0, (res-1)*(res-1)*6)
	for z := 0; z < res-1; z++ {
		for x := 0; x < res-1; x++ {
			topLeft := uint32(z*res + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*res + x)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return MeshData{
		X:         chunkX,
		Z:         chunkZ,
		Vertices:  vertices,
		Indices:   indices,
		Generated: true,
	}
}
