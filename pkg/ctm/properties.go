package ctm

// Property selects a value on the query surface. Texture and attribute maps
// are addressed positionally: the Nth texture map is TexMap1 + N - 1, the
// Nth attribute map AttribMap1 + N - 1.
type Property uint32

// Property selectors.
const (
	PropNone Property = 0

	// Integer properties.
	VertexCount    Property = 0x0101
	TriangleCount  Property = 0x0102
	HasNormals     Property = 0x0103
	TexMapCount    Property = 0x0104
	AttribMapCount Property = 0x0105

	// Integer array properties.
	Indices Property = 0x0201

	// Float array properties.
	Vertices Property = 0x0301
	Normals  Property = 0x0302

	// String properties.
	FileComment Property = 0x0401

	// Positional map bases.
	TexMap1    Property = 0x0700
	AttribMap1 Property = 0x0800
)

// GetInteger returns an integer property value. Unknown selectors return 0
// and record ErrInvalidArgument.
func (c *Context) GetInteger(p Property) uint32 {
	if c == nil {
		return 0
	}
	switch p {
	case VertexCount:
		return c.VertexCount()
	case TriangleCount:
		return c.TriangleCount()
	case TexMapCount:
		return uint32(len(c.texMaps))
	case AttribMapCount:
		return uint32(len(c.attribMaps))
	case HasNormals:
		if c.normals != nil {
			return 1
		}
		return 0
	default:
		c.setError(ErrInvalidArgument)
		return 0
	}
}

// GetIntegerArray returns an integer array property. The returned slice is
// the Context's live buffer and must not be retained across a load,
// redefinition, or Close. Unknown selectors return nil and record
// ErrInvalidArgument.
func (c *Context) GetIntegerArray(p Property) []uint32 {
	if c == nil {
		return nil
	}
	switch p {
	case Indices:
		return c.indices
	default:
		c.setError(ErrInvalidArgument)
		return nil
	}
}

// GetFloatArray returns a float array property: vertices, normals, or one
// texture/attribute map addressed from its base selector. Out-of-range map
// selectors and unknown properties return nil and record ErrInvalidArgument.
// The returned slice is the Context's live buffer.
func (c *Context) GetFloatArray(p Property) []float32 {
	if c == nil {
		return nil
	}

	if p >= TexMap1 && p < TexMap1+Property(maxMapCount) {
		if m := mapAt(c.texMaps, TexMap1, p); m != nil {
			return m.values
		}
		c.setError(ErrInvalidArgument)
		return nil
	}
	if p >= AttribMap1 && p < AttribMap1+Property(maxMapCount) {
		if m := mapAt(c.attribMaps, AttribMap1, p); m != nil {
			return m.values
		}
		c.setError(ErrInvalidArgument)
		return nil
	}

	switch p {
	case Vertices:
		return c.vertices
	case Normals:
		return c.normals
	default:
		c.setError(ErrInvalidArgument)
		return nil
	}
}

// GetString returns a string property. For maps the string is the map name.
// Unknown or out-of-range selectors return "" and record ErrInvalidArgument.
func (c *Context) GetString(p Property) string {
	if c == nil {
		return ""
	}

	if p >= TexMap1 && p < TexMap1+Property(maxMapCount) {
		if m := mapAt(c.texMaps, TexMap1, p); m != nil {
			return m.name
		}
		c.setError(ErrInvalidArgument)
		return ""
	}
	if p >= AttribMap1 && p < AttribMap1+Property(maxMapCount) {
		if m := mapAt(c.attribMaps, AttribMap1, p); m != nil {
			return m.name
		}
		c.setError(ErrInvalidArgument)
		return ""
	}

	switch p {
	case FileComment:
		return c.comment
	default:
		c.setError(ErrInvalidArgument)
		return ""
	}
}
