package ctm

import (
	"math"
	"testing"
)

func TestSetVertexPrecisionRelEquilateral(t *testing.T) {
	// A single equilateral triangle with side length L: every half-edge has
	// length L, so the computed precision is exactly rel × L.
	const L = 2.0
	h := float32(L * math.Sqrt(3) / 2)
	vertices := []float32{
		0, 0, 0,
		L, 0, 0,
		L / 2, h, 0,
	}
	indices := []uint32{0, 1, 2}

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, nil)
	c.SetVertexPrecisionRel(0.01)
	if code := c.Err(); code != ErrNone {
		t.Fatalf("SetVertexPrecisionRel failed: %v", code)
	}

	want := float32(0.01 * L)
	if diff := math.Abs(float64(c.vertexPrecision - want)); diff > 1e-6 {
		t.Errorf("vertexPrecision = %v, want %v (diff %g)", c.vertexPrecision, want, diff)
	}
}

func TestSetVertexPrecisionRelHalfEdgeDoubleCounting(t *testing.T) {
	// Unit square split along a diagonal. The diagonal is shared by both
	// triangles and must be counted twice: the mean over the six half-edges
	// is (4·1 + 2·√2)/6, not the unique-edge mean (4·1 + √2)/5.
	vertices, indices, _ := quadMesh()

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, nil)
	c.SetVertexPrecisionRel(1.0)
	if code := c.Err(); code != ErrNone {
		t.Fatalf("SetVertexPrecisionRel failed: %v", code)
	}

	want := (4 + 2*math.Sqrt2) / 6
	if diff := math.Abs(float64(c.vertexPrecision) - want); diff > 1e-6 {
		t.Errorf("vertexPrecision = %v, want %v (half-edge double counting)", c.vertexPrecision, want)
	}

	uniqueEdgeMean := (4 + math.Sqrt2) / 5
	if diff := math.Abs(float64(c.vertexPrecision) - uniqueEdgeMean); diff < 1e-3 {
		t.Error("precision matches the unique-edge mean; shared edges must be counted once per triangle")
	}
}

func TestSetVertexPrecisionRelNoTriangles(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	// No mesh defined at all.
	c.SetVertexPrecisionRel(0.01)
	if code := c.Err(); code != ErrInvalidMesh {
		t.Errorf("Err() = %v, want ErrInvalidMesh", code)
	}
	if c.vertexPrecision != 1.0/1024.0 {
		t.Errorf("precision changed by failed call: %v", c.vertexPrecision)
	}
}

func TestSetVertexPrecisionRelBadArgument(t *testing.T) {
	vertices, indices, _ := quadMesh()

	for _, rel := range []float32{0, -0.5} {
		c := NewExporter()
		c.DefineMesh(vertices, indices, nil)

		c.SetVertexPrecisionRel(rel)
		if code := c.Err(); code != ErrInvalidArgument {
			t.Errorf("rel=%v: Err() = %v, want ErrInvalidArgument", rel, code)
		}
		c.Close()
	}
}

func TestSetVertexPrecisionValidation(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	for _, p := range []float32{0, -1} {
		c.SetVertexPrecision(p)
		if code := c.Err(); code != ErrInvalidArgument {
			t.Errorf("precision %v: Err() = %v, want ErrInvalidArgument", p, code)
		}
	}

	c.SetVertexPrecision(0.25)
	if code := c.Err(); code != ErrNone {
		t.Fatalf("valid precision rejected: %v", code)
	}
	if c.vertexPrecision != 0.25 {
		t.Errorf("vertexPrecision = %v, want 0.25", c.vertexPrecision)
	}
}
