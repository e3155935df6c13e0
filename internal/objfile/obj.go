// Package objfile reads and writes the subset of Wavefront OBJ needed to
// move triangle meshes in and out of CTM files: positions, texture
// coordinates, normals, and faces (polygons are fan-triangulated).
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ctmmath "github.com/katiya-cw/OpenCTM/pkg/math"
)

// OBJ format errors.
var (
	ErrNoGeometry   = errors.New("obj: no triangles found")
	ErrBadFaceIndex = errors.New("obj: face index out of range")
)

// Mesh holds triangle geometry in the flat layout the CTM library uses:
// 3 floats per vertex position and normal, 2 per texture coordinate,
// 3 indices per triangle.
type Mesh struct {
	Vertices  []float32
	Indices   []uint32
	Normals   []float32 // nil when the file has no vn records
	TexCoords []float32 // nil when the file has no vt records
}

// VertexCount returns the number of unified vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// corner identifies one face corner by its OBJ index triple. OBJ keeps
// separate index spaces for positions, texcoords, and normals; unified
// vertices are deduplicated on the whole triple.
type corner struct {
	pos, tex, norm int
}

// Parse reads an OBJ stream. Unknown record types are skipped.
func Parse(r io.Reader) (*Mesh, error) {
	var (
		positions []ctmmath.Vec3
		texcoords []ctmmath.Vec2
		normals   []ctmmath.Vec3

		mesh    Mesh
		unified = make(map[corner]uint32)
	)

	hasTex := false
	hasNorm := false

	addCorner := func(cr corner) (uint32, error) {
		if cr.pos < 0 || cr.pos >= len(positions) {
			return 0, ErrBadFaceIndex
		}
		if idx, ok := unified[cr]; ok {
			return idx, nil
		}
		idx := uint32(len(mesh.Vertices) / 3)
		p := positions[cr.pos]
		mesh.Vertices = append(mesh.Vertices, p.X, p.Y, p.Z)
		if hasTex {
			var t ctmmath.Vec2
			if cr.tex >= 0 && cr.tex < len(texcoords) {
				t = texcoords[cr.tex]
			}
			mesh.TexCoords = append(mesh.TexCoords, t.X, t.Y)
		}
		if hasNorm {
			var n ctmmath.Vec3
			if cr.norm >= 0 && cr.norm < len(normals) {
				n = normals[cr.norm]
			}
			mesh.Normals = append(mesh.Normals, n.X, n.Y, n.Z)
		}
		unified[cr] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
			}
			positions = append(positions, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj: line %d: short vt record", lineNo)
			}
			u, err1 := parseFloat(fields[1])
			v, err2 := parseFloat(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("obj: line %d: bad vt record", lineNo)
			}
			texcoords = append(texcoords, ctmmath.Vec2{X: u, Y: v})
			hasTex = true

		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
			}
			normals = append(normals, v)
			hasNorm = true

		case "f":
			verts := fields[1:]
			if len(verts) < 3 {
				return nil, fmt.Errorf("obj: line %d: face with %d corners", lineNo, len(verts))
			}
			corners := make([]corner, len(verts))
			for i, spec := range verts {
				cr, err := parseCorner(spec)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
				}
				corners[i] = cr
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(corners); i++ {
				for _, cr := range []corner{corners[0], corners[i], corners[i+1]} {
					idx, err := addCorner(cr)
					if err != nil {
						return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
					}
					mesh.Indices = append(mesh.Indices, idx)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return nil, ErrNoGeometry
	}
	return &mesh, nil
}

// ParseFile reads an OBJ file from disk.
func ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: opening file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// parseCorner parses a face corner spec: "v", "v/vt", "v//vn" or "v/vt/vn".
// OBJ indices are 1-based; the returned indices are 0-based with -1 for an
// absent component.
func parseCorner(spec string) (corner, error) {
	cr := corner{pos: -1, tex: -1, norm: -1}
	parts := strings.Split(spec, "/")
	for i, part := range parts {
		if part == "" || i > 2 {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n == 0 {
			return cr, fmt.Errorf("obj: bad face index %q", spec)
		}
		switch i {
		case 0:
			cr.pos = n - 1
		case 1:
			cr.tex = n - 1
		case 2:
			cr.norm = n - 1
		}
	}
	if cr.pos < 0 {
		return cr, fmt.Errorf("obj: face corner %q has no position", spec)
	}
	return cr, nil
}

func parseVec3(fields []string) (ctmmath.Vec3, error) {
	if len(fields) < 3 {
		return ctmmath.Vec3{}, errors.New("short vector record")
	}
	x, err1 := parseFloat(fields[0])
	y, err2 := parseFloat(fields[1])
	z, err3 := parseFloat(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return ctmmath.Vec3{}, errors.New("bad vector record")
	}
	return ctmmath.Vec3{X: x, Y: y, Z: z}, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

// ComputeNormals fills in per-vertex normals as the area-weighted average of
// incident face normals. Existing normals are replaced.
func (m *Mesh) ComputeNormals() {
	normals := make([]ctmmath.Vec3, m.VertexCount())
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		a := m.vertexAt(i0)
		b := m.vertexAt(i1)
		c := m.vertexAt(i2)
		// Cross product magnitude carries the triangle area, weighting
		// larger faces more.
		face := b.Sub(a).Cross(c.Sub(a))
		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}

	m.Normals = make([]float32, 3*len(normals))
	for i, n := range normals {
		u := n.Normalize()
		m.Normals[i*3] = u.X
		m.Normals[i*3+1] = u.Y
		m.Normals[i*3+2] = u.Z
	}
}

func (m *Mesh) vertexAt(i uint32) ctmmath.Vec3 {
	return ctmmath.Vec3{
		X: m.Vertices[i*3],
		Y: m.Vertices[i*3+1],
		Z: m.Vertices[i*3+2],
	}
}

// Write emits the mesh as OBJ text.
func Write(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(bw, "v %g %g %g\n", m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2])
	}
	hasTex := m.TexCoords != nil
	if hasTex {
		for i := 0; i < m.VertexCount(); i++ {
			fmt.Fprintf(bw, "vt %g %g\n", m.TexCoords[i*2], m.TexCoords[i*2+1])
		}
	}
	hasNorm := m.Normals != nil
	if hasNorm {
		for i := 0; i < m.VertexCount(); i++ {
			fmt.Fprintf(bw, "vn %g %g %g\n", m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
		}
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		fmt.Fprint(bw, "f")
		for j := 0; j < 3; j++ {
			idx := m.Indices[t+j] + 1 // OBJ indices are 1-based
			switch {
			case hasTex && hasNorm:
				fmt.Fprintf(bw, " %d/%d/%d", idx, idx, idx)
			case hasTex:
				fmt.Fprintf(bw, " %d/%d", idx, idx)
			case hasNorm:
				fmt.Fprintf(bw, " %d//%d", idx, idx)
			default:
				fmt.Fprintf(bw, " %d", idx)
			}
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteFile writes the mesh as an OBJ file on disk.
func WriteFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: creating file: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
