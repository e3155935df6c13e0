package ctm

import (
	ctmmath "github.com/katiya-cw/OpenCTM/pkg/math"
)

// SetVertexPrecisionRel derives the vertex quantization step from the mesh
// itself: precision = relPrecision * mean edge length.
//
// The mean is taken over every half-edge of every triangle, walking each
// triangle's corners starting from the third one, so an interior edge shared
// by two triangles counts twice.
//
// Export mode only. Fails with ErrInvalidMesh when the mesh has no
// triangles and ErrInvalidArgument when relPrecision is not positive.
func (c *Context) SetVertexPrecisionRel(relPrecision float32) {
	if c == nil {
		return
	}
	if !c.exportOnly() {
		return
	}
	if relPrecision <= 0 {
		c.setError(ErrInvalidArgument)
		return
	}

	var total float32
	edgeCount := 0
	for t := 0; t+2 < len(c.indices); t += 3 {
		p1 := c.vertexAt(c.indices[t+2])
		for j := 0; j < 3; j++ {
			p2 := c.vertexAt(c.indices[t+j])
			total += p1.Distance(p2)
			p1 = p2
			edgeCount++
		}
	}
	if edgeCount == 0 {
		c.setError(ErrInvalidMesh)
		return
	}

	c.vertexPrecision = relPrecision * (total / float32(edgeCount))
}

// vertexAt returns vertex i as a vector.
func (c *Context) vertexAt(i uint32) ctmmath.Vec3 {
	return ctmmath.Vec3{
		X: c.vertices[i*3],
		Y: c.vertices[i*3+1],
		Z: c.vertices[i*3+2],
	}
}
