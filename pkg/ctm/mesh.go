package ctm

// VertexCount returns the number of vertices in the current mesh.
func (c *Context) VertexCount() uint32 {
	if c == nil {
		return 0
	}
	return uint32(len(c.vertices) / 3)
}

// TriangleCount returns the number of triangles in the current mesh.
func (c *Context) TriangleCount() uint32 {
	if c == nil {
		return 0
	}
	return uint32(len(c.indices) / 3)
}

// HasNormals reports whether the current mesh carries per-vertex normals.
func (c *Context) HasNormals() bool {
	return c != nil && c.normals != nil
}

// DefineMesh attaches caller-owned mesh buffers to an exporter Context.
//
// vertices holds 3 floats per vertex and indices 3 entries per triangle;
// both must be non-empty. normals is optional but must match the vertex
// slice length when present. The slices are stored verbatim: the Context
// never copies, mutates, or retains them past the next DefineMesh or Close,
// and index range validation is deferred to the payload codecs.
//
// Any previously defined mesh is cleared first, including attribute maps.
func (c *Context) DefineMesh(vertices []float32, indices []uint32, normals []float32) {
	if c == nil {
		return
	}
	if !c.exportOnly() {
		return
	}
	if len(vertices) == 0 || len(indices) == 0 ||
		len(vertices)%3 != 0 || len(indices)%3 != 0 ||
		(normals != nil && len(normals) != len(vertices)) {
		c.setError(ErrInvalidArgument)
		return
	}

	c.clearMesh()

	c.vertices = vertices
	c.indices = indices
	c.normals = normals
}

// clearMesh drops all mesh buffers and attribute maps. Import-owned arrays
// become garbage; Export-borrowed arrays are simply forgotten.
func (c *Context) clearMesh() {
	c.vertices = nil
	c.indices = nil
	c.normals = nil
	c.texMaps = nil
	c.attribMaps = nil
}

// hasMesh reports whether a complete mesh (vertices and indices) is present.
func (c *Context) hasMesh() bool {
	return len(c.vertices) > 0 && len(c.indices) > 0
}
