package terrain

import (
	"testing"
)

func testChunkParams() ChunkParams {
	return ChunkParams{ChunkSize: 16, ChunkResolution: 32}
}

// TestBuildMeshSizing verifies vertex and index buffer lengths follow the
// grid resolution.
func TestBuildMeshSizing(t *testing.T) {
	hf := NewHeightField(testNoiseParams())

	for _, res := range []int{2, 4, 32, 33} {
		cp := ChunkParams{ChunkSize: 16, ChunkResolution: res}
		mesh := BuildMesh(hf, cp, 0, 0)

		wantVerts := res * res * VertexStride
		if len(mesh.Vertices) != wantVerts {
			t.Errorf("res=%d: got %d vertex floats, want %d", res, len(mesh.Vertices), wantVerts)
		}
		wantIdx := (res - 1) * (res - 1) * 6
		if len(mesh.Indices) != wantIdx {
			t.Errorf("res=%d: got %d indices, want %d", res, len(mesh.Indices), wantIdx)
		}
		if !mesh.Generated {
			t.Errorf("res=%d: mesh not marked generated", res)
		}
	}
}

// TestBuildMeshDeterministic verifies two builds of the same chunk are
// byte-for-byte identical.
func TestBuildMeshDeterministic(t *testing.T) {
	hf := NewHeightField(testNoiseParams())
	cp := testChunkParams()

	a := BuildMesh(hf, cp, 3, -2)
	b := BuildMesh(hf, cp, 3, -2)

	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex float %d differs: %v != %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs: %v != %v", i, a.Indices[i], b.Indices[i])
		}
	}
}

// TestBuildMeshWorldSpaceBounds verifies vertex positions cover the
// chunk's world footprint. Resolution 17 keeps the grid step exact in
// floating point so positions can be compared directly.
func TestBuildMeshWorldSpaceBounds(t *testing.T) {
	hf := NewHeightField(testNoiseParams())
	cp := ChunkParams{ChunkSize: 16, ChunkResolution: 17}
	mesh := BuildMesh(hf, cp, -1, 2)

	res := cp.ChunkResolution
	first := mesh.Vertices[0:3]
	last := mesh.Vertices[(res*res-1)*VertexStride:]

	if first[0] != -16 || first[2] != 32 {
		t.Errorf("first vertex at (%f,%f), want (-16,32)", first[0], first[2])
	}
	if last[0] != 0 || last[2] != 48 {
		t.Errorf("last vertex at (%f,%f), want (0,48)", last[0], last[2])
	}
}

// TestBuildMeshSeamFree verifies adjacent chunks produce bit-identical
// vertices along their shared edge.
func TestBuildMeshSeamFree(t *testing.T) {
	hf := NewHeightField(testNoiseParams())
	cp := testChunkParams()
	res := cp.ChunkResolution

	left := BuildMesh(hf, cp, 0, 0)
	right := BuildMesh(hf, cp, 1, 0)

	// Left chunk's rightmost column vs right chunk's leftmost column.
	for z := 0; z < res; z++ {
		li := (z*res + (res - 1)) * VertexStride
		ri := (z * res) * VertexStride
		for k := 0; k < VertexStride; k++ {
			if left.Vertices[li+k] != right.Vertices[ri+k] {
				t.Fatalf("seam mismatch at row %d component %d: %v != %v",
					z, k, left.Vertices[li+k], right.Vertices[ri+k])
			}
		}
	}

	// Same check across a Z boundary.
	top := BuildMesh(hf, cp, 0, 0)
	bottom := BuildMesh(hf, cp, 0, 1)
	for x := 0; x < res; x++ {
		ti := ((res-1)*res + x) * VertexStride
		bi := x * VertexStride
		for k := 0; k < VertexStride; k++ {
			if top.Vertices[ti+k] != bottom.Vertices[bi+k] {
				t.Fatalf("seam mismatch at column %d component %d: %v != %v",
					x, k, top.Vertices[ti+k], bottom.Vertices[bi+k])
			}
		}
	}

	// The negative/zero boundary is where rounding differs most between
	// coordinate formulas: chunk -1's last column ends at world 0, which
	// start+i*step only reaches up to an ulp.
	neg := BuildMesh(hf, cp, -1, 0)
	zero := BuildMesh(hf, cp, 0, 0)
	for z := 0; z < res; z++ {
		ni := (z*res + (res - 1)) * VertexStride
		zi := (z * res) * VertexStride
		for k := 0; k < VertexStride; k++ {
			if neg.Vertices[ni+k] != zero.Vertices[zi+k] {
				t.Fatalf("seam mismatch across negative boundary at row %d component %d: %v != %v",
					z, k, neg.Vertices[ni+k], zero.Vertices[zi+k])
			}
		}
	}
}

// TestBuildMeshIndexWinding verifies the documented triangle order for
// the first grid cell.
func TestBuildMeshIndexWinding(t *testing.T) {
	hf := NewHeightField(testNoiseParams())
	cp := ChunkParams{ChunkSize: 16, ChunkResolution: 3}
	mesh := BuildMesh(hf, cp, 0, 0)

	res := uint32(3)
	want := []uint32{
		0, res, 1, // topLeft, bottomLeft, topRight
		1, res, res + 1, // topRight, bottomLeft, bottomRight
	}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Errorf("index %d = %d, want %d", i, mesh.Indices[i], w)
		}
	}

	// All indices must address a valid vertex.
	for i, idx := range mesh.Indices {
		if idx >= res*res {
			t.Fatalf("index %d = %d out of range for %d vertices", i, idx, res*res)
		}
	}
}

func BenchmarkBuildMesh(b *testing.B) {
	hf := NewHeightField(testNoiseParams())
	cp := testChunkParams()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildMesh(hf, cp, int32(i), 0)
	}
}
