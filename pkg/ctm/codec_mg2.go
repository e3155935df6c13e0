package ctm

import (
	"fmt"
	"math"
)

// mg2Codec quantizes vertex positions to a uniform grid before compression.
// The vertex section stores the grid origin (component-wise minimum) and the
// step, followed by delta-encoded cell coordinates; the restored error per
// component is at most half the step. Indices, normals, and maps are stored
// as in MG1.
type mg2Codec struct{}

func (mg2Codec) encode(c *Context) error {
	s := &c.stream

	if err := s.writeTag(sectionIndices); err != nil {
		return err
	}
	if err := s.writePackedUints(deltaEncode(c.indices)); err != nil {
		return err
	}

	if err := s.writeTag(sectionVertices); err != nil {
		return err
	}
	origin := gridOrigin(c.vertices)
	step := c.vertexPrecision
	for _, o := range origin {
		if err := s.writeFloat(o); err != nil {
			return err
		}
	}
	if err := s.writeFloat(step); err != nil {
		return err
	}
	if err := s.writePackedUints(deltaEncode(quantize(c.vertices, origin, step))); err != nil {
		return err
	}

	if c.normals != nil {
		if err := s.writeTag(sectionNormals); err != nil {
			return err
		}
		if err := s.writePackedFloats(c.normals); err != nil {
			return err
		}
	}

	if err := encodeMapsPacked(s, c.texMaps, sectionTexMap); err != nil {
		return err
	}
	return encodeMapsPacked(s, c.attribMaps, sectionAttribMap)
}

func (mg2Codec) decode(c *Context) error {
	s := &c.stream

	if err := s.expectTag(sectionIndices); err != nil {
		return err
	}
	if err := s.readPackedUints(c.indices); err != nil {
		return err
	}
	deltaDecode(c.indices)

	if err := s.expectTag(sectionVertices); err != nil {
		return err
	}
	var origin [3]float32
	for i := range origin {
		o, err := s.readFloat()
		if err != nil {
			return err
		}
		origin[i] = o
	}
	step, err := s.readFloat()
	if err != nil {
		return err
	}
	if !(step > 0) || math.IsInf(float64(step), 1) {
		return fmt.Errorf("%w: bad grid step %v", ErrFormatError, step)
	}
	cells := make([]uint32, len(c.vertices))
	if err := s.readPackedUints(cells); err != nil {
		return err
	}
	deltaDecode(cells)
	dequantize(c.vertices, cells, origin, step)

	if c.normals != nil {
		if err := s.expectTag(sectionNormals); err != nil {
			return err
		}
		if err := s.readPackedFloats(c.normals); err != nil {
			return err
		}
	}

	if err := decodeMapsPacked(s, c.texMaps, sectionTexMap); err != nil {
		return err
	}
	return decodeMapsPacked(s, c.attribMaps, sectionAttribMap)
}

// gridOrigin returns the component-wise minimum of the vertex positions.
func gridOrigin(vertices []float32) [3]float32 {
	var origin [3]float32
	for k := 0; k < 3 && k < len(vertices); k++ {
		origin[k] = vertices[k]
	}
	for i := 3; i < len(vertices); i++ {
		if vertices[i] < origin[i%3] {
			origin[i%3] = vertices[i]
		}
	}
	return origin
}

// quantize maps each coordinate to its nearest grid cell.
func quantize(vertices []float32, origin [3]float32, step float32) []uint32 {
	cells := make([]uint32, len(vertices))
	for i, v := range vertices {
		cells[i] = uint32(math.Round(float64(v-origin[i%3]) / float64(step)))
	}
	return cells
}

// dequantize restores coordinates from grid cells into dst.
func dequantize(dst []float32, cells []uint32, origin [3]float32, step float32) {
	for i := range dst {
		dst[i] = origin[i%3] + float32(float64(cells[i])*float64(step))
	}
}
