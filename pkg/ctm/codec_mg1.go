package ctm

// mg1Codec is the lossless compressed method: triangle indices are
// delta-encoded against the previous triangle and every array is stored as
// an LZMA block. Vertex data keeps its exact float bits.
type mg1Codec struct{}

func (mg1Codec) encode(c *Context) error {
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
	if err := s.writePackedFloats(c.vertices); err != nil {
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

func (mg1Codec) decode(c *Context) error {
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
	if err := s.readPackedFloats(c.vertices); err != nil {
		return err
	}

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
