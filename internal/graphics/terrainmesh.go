package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

// TerrainMesh owns the GPU buffers for one chunk's geometry. The vertex
// layout is the builder's interleaved format: position xyz then normal
// xyz, float32 each, no transformation on upload.
type TerrainMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadTerrainMesh copies a generated chunk's buffers to the GPU.
// The MeshData must be generated; placeholders have nothing to upload.
func UploadTerrainMesh(data *terrain.MeshData) *TerrainMesh {
	m := &TerrainMesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(terrain.VertexStride * 4)

	// Position: 3 floats at offset 0.
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))

	// Normal: 3 floats at offset 12.
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m
}

// Draw issues the indexed draw call for this chunk.
func (m *TerrainMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *TerrainMesh) Delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
