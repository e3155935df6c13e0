package ctm

// meshCodec is one payload backend. The Context is the sole shared state:
// it carries the bound stream, the mesh buffers, and the precision settings.
// decode fills buffers that were already sized from the header; encode reads
// only the current buffers. Header-before-payload sequencing is owned by
// Load and Save, not by the codecs.
type meshCodec interface {
	encode(c *Context) error
	decode(c *Context) error
}

// codecFor selects the backend for a compression method.
func codecFor(m Method) meshCodec {
	switch m {
	case MethodRaw:
		return rawCodec{}
	case MethodMG1:
		return mg1Codec{}
	case MethodMG2:
		return mg2Codec{}
	default:
		return nil
	}
}

// Payload section tags, written in this order by every codec.
const (
	sectionIndices   = "INDX"
	sectionVertices  = "VERT"
	sectionNormals   = "NORM"
	sectionTexMap    = "TEXC"
	sectionAttribMap = "ATTR"
)

// deltaEncode turns an index stream into component-wise deltas against the
// previous triangle (stride 3). Uses wraparound arithmetic, so decoding is
// exact for any input.
func deltaEncode(src []uint32) []uint32 {
	out := make([]uint32, len(src))
	for i := range src {
		if i < 3 {
			out[i] = src[i]
		} else {
			out[i] = src[i] - src[i-3]
		}
	}
	return out
}

// deltaDecode reverses deltaEncode in place.
func deltaDecode(dst []uint32) {
	for i := 3; i < len(dst); i++ {
		dst[i] += dst[i-3]
	}
}

// encodeMapsPacked writes every map in a list as tag + name + LZMA block.
func encodeMapsPacked(s *stream, list []*floatMap, tag string) error {
	for _, m := range list {
		if err := s.writeTag(tag); err != nil {
			return err
		}
		if err := s.writeString(m.name); err != nil {
			return err
		}
		if err := s.writePackedFloats(m.values); err != nil {
			return err
		}
	}
	return nil
}

// decodeMapsPacked fills already-allocated map records from the stream.
func decodeMapsPacked(s *stream, list []*floatMap, tag string) error {
	for _, m := range list {
		if err := s.expectTag(tag); err != nil {
			return err
		}
		name, err := s.readString()
		if err != nil {
			return err
		}
		m.name = name
		if err := s.readPackedFloats(m.values); err != nil {
			return err
		}
	}
	return nil
}
