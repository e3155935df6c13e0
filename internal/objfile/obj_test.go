package objfile

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

const quadOBJ = `# unit square
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseQuad(t *testing.T) {
	mesh, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// One quad fan-triangulated into two triangles, four unified vertices.
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", mesh.TriangleCount())
	}

	wantIndices := []uint32{0, 1, 2, 0, 2, 3}
	for i, want := range wantIndices {
		if mesh.Indices[i] != want {
			t.Fatalf("Indices = %v, want %v", mesh.Indices, wantIndices)
		}
	}

	if len(mesh.TexCoords) != 2*4 {
		t.Errorf("TexCoords length = %d, want 8", len(mesh.TexCoords))
	}
	if len(mesh.Normals) != 3*4 {
		t.Errorf("Normals length = %d, want 12", len(mesh.Normals))
	}
	for i := 0; i < 4; i++ {
		if mesh.Normals[i*3+2] != 1 {
			t.Errorf("vertex %d normal z = %v, want 1", i, mesh.Normals[i*3+2])
		}
	}
}

func TestParseDeduplicatesCorners(t *testing.T) {
	// Two triangles sharing an edge, written with repeated corner triples.
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4 (corners not deduplicated)", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", mesh.TriangleCount())
	}
}

func TestParseSplitsOnDifferingNormals(t *testing.T) {
	// Same position, different normals: the corner triples differ, so the
	// position must be duplicated into two unified vertices.
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 1 0 0
f 1//1 2//1 3//1
f 1//2 2//2 3//2
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mesh.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", mesh.VertexCount())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrNoGeometry},
		{"vertices only", "v 0 0 0\nv 1 0 0\nv 0 1 0\n", ErrNoGeometry},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", ErrBadFaceIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseBadRecords(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 0 0\nf 1 1 1\n"},
		{"bad float", "v 0 0 zero\nf 1 1 1\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero face index", "v 0 0 0\nf 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Error("Parse accepted malformed input")
			}
		})
	}
}

func TestParseSkipsUnknownRecords(t *testing.T) {
	src := `
mtllib scene.mtl
o quad
usemtl default
s off
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
}

func TestComputeNormals(t *testing.T) {
	// Flat quad in the XY plane: every averaged normal is +Z.
	mesh := &Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}

	mesh.ComputeNormals()
	if len(mesh.Normals) != 3*4 {
		t.Fatalf("Normals length = %d, want 12", len(mesh.Normals))
	}
	for i := 0; i < 4; i++ {
		x, y, z := mesh.Normals[i*3], mesh.Normals[i*3+1], mesh.Normals[i*3+2]
		if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)) > 1e-6 ||
			math.Abs(float64(z)-1) > 1e-6 {
			t.Errorf("vertex %d normal = (%v, %v, %v), want (0, 0, 1)", i, x, y, z)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	orig, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, orig); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse written output: %v", err)
	}

	if back.VertexCount() != orig.VertexCount() {
		t.Errorf("VertexCount = %d, want %d", back.VertexCount(), orig.VertexCount())
	}
	if back.TriangleCount() != orig.TriangleCount() {
		t.Errorf("TriangleCount = %d, want %d", back.TriangleCount(), orig.TriangleCount())
	}
	for i := range orig.Vertices {
		if back.Vertices[i] != orig.Vertices[i] {
			t.Fatalf("vertex data changed at %d: %v vs %v", i, back.Vertices[i], orig.Vertices[i])
		}
	}
	for i := range orig.TexCoords {
		if back.TexCoords[i] != orig.TexCoords[i] {
			t.Fatalf("texcoord data changed at %d", i)
		}
	}
}

func TestWriteFaceFormats(t *testing.T) {
	mesh := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}

	var buf bytes.Buffer
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "f 1 2 3") {
		t.Errorf("positions-only face format wrong:\n%s", buf.String())
	}

	mesh.Normals = []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	buf.Reset()
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "f 1//1 2//2 3//3") {
		t.Errorf("normals face format wrong:\n%s", buf.String())
	}
}
