package ctm

import "testing"

func TestGetIntegerUnknownSelector(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	if got := c.GetInteger(Property(0xdead)); got != 0 {
		t.Errorf("GetInteger = %d, want 0", got)
	}
	if code := c.Err(); code != ErrInvalidArgument {
		t.Errorf("Err() = %v, want ErrInvalidArgument", code)
	}
}

func TestGetIntegerArrayUnknownSelector(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	// Vertices is a float array selector, not an integer one.
	if got := c.GetIntegerArray(Vertices); got != nil {
		t.Error("GetIntegerArray returned data for a float selector")
	}
	if code := c.Err(); code != ErrInvalidArgument {
		t.Errorf("Err() = %v, want ErrInvalidArgument", code)
	}
}

func TestGetFloatArrayUnknownSelector(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	if got := c.GetFloatArray(Indices); got != nil {
		t.Error("GetFloatArray returned data for an integer selector")
	}
	if code := c.Err(); code != ErrInvalidArgument {
		t.Errorf("Err() = %v, want ErrInvalidArgument", code)
	}
}

func TestGetFloatArrayAbsentNormals(t *testing.T) {
	vertices, indices, _ := quadMesh()

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, nil)

	// Absent normals are not an error: the selector is valid, the channel is
	// just empty.
	if got := c.GetFloatArray(Normals); got != nil {
		t.Error("GetFloatArray(Normals) returned data for a mesh without normals")
	}
	if code := c.Err(); code != ErrNone {
		t.Errorf("Err() = %v, want ErrNone", code)
	}
}

func TestGetMapSelectorOutOfRange(t *testing.T) {
	vertices, indices, _ := quadMesh()

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, nil)
	c.AddTexMap(make([]float32, 2*4), "uv")

	tests := []struct {
		name string
		sel  Property
	}{
		{"second tex map missing", TexMap1 + 1},
		{"attrib map missing", AttribMap1},
		{"far past the list", TexMap1 + 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.GetFloatArray(tt.sel); got != nil {
				t.Error("GetFloatArray returned data for an absent map")
			}
			if code := c.Err(); code != ErrInvalidArgument {
				t.Errorf("GetFloatArray: Err() = %v, want ErrInvalidArgument", code)
			}

			if got := c.GetString(tt.sel); got != "" {
				t.Errorf("GetString = %q for an absent map", got)
			}
			if code := c.Err(); code != ErrInvalidArgument {
				t.Errorf("GetString: Err() = %v, want ErrInvalidArgument", code)
			}
		})
	}
}

func TestGetStringUnknownSelector(t *testing.T) {
	c := NewExporter()
	defer c.Close()

	if got := c.GetString(VertexCount); got != "" {
		t.Errorf("GetString = %q, want empty", got)
	}
	if code := c.Err(); code != ErrInvalidArgument {
		t.Errorf("Err() = %v, want ErrInvalidArgument", code)
	}
}

func TestGettersDoNotCopy(t *testing.T) {
	vertices, indices, _ := quadMesh()

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, nil)

	// Export mode borrows the caller's buffers; the getters hand the same
	// backing array back.
	got := c.GetFloatArray(Vertices)
	if len(got) == 0 || &got[0] != &vertices[0] {
		t.Error("GetFloatArray(Vertices) copied the borrowed buffer")
	}
	idx := c.GetIntegerArray(Indices)
	if len(idx) == 0 || &idx[0] != &indices[0] {
		t.Error("GetIntegerArray(Indices) copied the borrowed buffer")
	}
}

func TestIntegerProperties(t *testing.T) {
	vertices, indices, normals := quadMesh()

	c := NewExporter()
	defer c.Close()

	c.DefineMesh(vertices, indices, normals)

	if got := c.GetInteger(VertexCount); got != 4 {
		t.Errorf("VertexCount = %d, want 4", got)
	}
	if got := c.GetInteger(TriangleCount); got != 2 {
		t.Errorf("TriangleCount = %d, want 2", got)
	}
	if got := c.GetInteger(HasNormals); got != 1 {
		t.Errorf("HasNormals = %d, want 1", got)
	}
	if got := c.GetInteger(TexMapCount); got != 0 {
		t.Errorf("TexMapCount = %d, want 0", got)
	}
	if got := c.GetInteger(AttribMapCount); got != 0 {
		t.Errorf("AttribMapCount = %d, want 0", got)
	}
}
