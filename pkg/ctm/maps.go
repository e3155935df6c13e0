package ctm

// floatMap is one named per-vertex float channel. Maps are addressed
// positionally (first, second, ...) through the Property selectors, so the
// list is a plain ordered slice.
type floatMap struct {
	name       string
	values     []float32
	components uint32  // floats per vertex, fixed at creation
	precision  float32 // quantization target, reserved for map codecs
}

// AddTexMap attaches a texture coordinate map (2 floats per vertex) to the
// current mesh and returns its Property selector, or PropNone on failure.
// The mesh must be defined first so the value count can be validated.
// Export mode only; values are borrowed like the mesh buffers.
func (c *Context) AddTexMap(values []float32, name string) Property {
	if c == nil {
		return PropNone
	}
	return c.addMap(&c.texMaps, TexMap1, texMapComponents, values, name)
}

// AddAttribMap attaches a generic attribute map (4 floats per vertex) to the
// current mesh and returns its Property selector, or PropNone on failure.
// Export mode only; values are borrowed like the mesh buffers.
func (c *Context) AddAttribMap(values []float32, name string) Property {
	if c == nil {
		return PropNone
	}
	return c.addMap(&c.attribMaps, AttribMap1, attribMapComponents, values, name)
}

func (c *Context) addMap(list *[]*floatMap, base Property, components uint32, values []float32, name string) Property {
	if !c.exportOnly() {
		return PropNone
	}
	if len(values) == 0 || !c.hasMesh() ||
		uint32(len(values)) != components*c.VertexCount() {
		c.setError(ErrInvalidArgument)
		return PropNone
	}
	if len(*list) >= maxMapCount {
		c.setError(ErrInvalidArgument)
		return PropNone
	}

	*list = append(*list, &floatMap{
		name:       name,
		values:     values,
		components: components,
		precision:  1.0 / 4096.0,
	})
	return base + Property(len(*list)-1)
}

// SetTexMapPrecision sets the quantization target for one texture map,
// selected by its Property. The value is stored on the map record; texture
// map payloads are currently written losslessly by every codec.
// Export mode only.
func (c *Context) SetTexMapPrecision(texMap Property, precision float32) {
	if c == nil {
		return
	}
	c.setMapPrecision(c.texMaps, TexMap1, texMap, precision)
}

// SetAttribMapPrecision sets the quantization target for one attribute map,
// selected by its Property. The value is stored on the map record; attribute
// map payloads are currently written losslessly by every codec.
// Export mode only.
func (c *Context) SetAttribMapPrecision(attribMap Property, precision float32) {
	if c == nil {
		return
	}
	c.setMapPrecision(c.attribMaps, AttribMap1, attribMap, precision)
}

func (c *Context) setMapPrecision(list []*floatMap, base Property, p Property, precision float32) {
	if !c.exportOnly() {
		return
	}
	if precision <= 0 || p < base || int(p-base) >= len(list) {
		c.setError(ErrInvalidArgument)
		return
	}
	list[p-base].precision = precision
}

// mapAt returns the Nth map of a list or nil when the selector is out of
// range relative to the base tag.
func mapAt(list []*floatMap, base Property, p Property) *floatMap {
	if p < base || int(p-base) >= len(list) {
		return nil
	}
	return list[p-base]
}
