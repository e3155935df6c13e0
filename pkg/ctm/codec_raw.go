package ctm

// rawCodec stores the payload as verbatim little-endian dumps. Round trips
// are bit-exact and the output is readable without any decompressor.
type rawCodec struct{}

func (rawCodec) encode(c *Context) error {
	s := &c.stream

	if err := s.writeTag(sectionIndices); err != nil {
		return err
	}
	if err := s.writeUint32Array(c.indices); err != nil {
		return err
	}

	if err := s.writeTag(sectionVertices); err != nil {
		return err
	}
	if err := s.writeFloatArray(c.vertices); err != nil {
		return err
	}

	if c.normals != nil {
		if err := s.writeTag(sectionNormals); err != nil {
			return err
		}
		if err := s.writeFloatArray(c.normals); err != nil {
			return err
		}
	}

	if err := rawEncodeMaps(s, c.texMaps, sectionTexMap); err != nil {
		return err
	}
	return rawEncodeMaps(s, c.attribMaps, sectionAttribMap)
}

func (rawCodec) decode(c *Context) error {
	s := &c.stream

	if err := s.expectTag(sectionIndices); err != nil {
		return err
	}
	if err := s.readUint32Array(c.indices); err != nil {
		return err
	}

	if err := s.expectTag(sectionVertices); err != nil {
		return err
	}
	if err := s.readFloatArray(c.vertices); err != nil {
		return err
	}

	if c.normals != nil {
		if err := s.expectTag(sectionNormals); err != nil {
			return err
		}
		if err := s.readFloatArray(c.normals); err != nil {
			return err
		}
	}

	if err := rawDecodeMaps(s, c.texMaps, sectionTexMap); err != nil {
		return err
	}
	return rawDecodeMaps(s, c.attribMaps, sectionAttribMap)
}

func rawEncodeMaps(s *stream, list []*floatMap, tag string) error {
	for _, m := range list {
		if err := s.writeTag(tag); err != nil {
			return err
		}
		if err := s.writeString(m.name); err != nil {
			return err
		}
		if err := s.writeFloatArray(m.values); err != nil {
			return err
		}
	}
	return nil
}

func rawDecodeMaps(s *stream, list []*floatMap, tag string) error {
	for _, m := range list {
		if err := s.expectTag(tag); err != nil {
			return err
		}
		name, err := s.readString()
		if err != nil {
			return err
		}
		m.name = name
		if err := s.readFloatArray(m.values); err != nil {
			return err
		}
	}
	return nil
}
