package ctm

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads a CTM file from disk. Import mode only. A path that cannot be
// opened records ErrFileError; everything else behaves like LoadReader.
func (c *Context) Load(path string) {
	if c == nil {
		return
	}
	if c.mode != Import {
		c.setError(ErrInvalidOperation)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		c.setError(ErrFileError)
		return
	}
	defer f.Close()

	c.LoadReader(f)
}

// LoadReader reads a CTM stream from any io.Reader: header first, then the
// payload through the codec the header names. Import mode only.
//
// On any failure the mesh is left empty, never half-populated, and the
// failing code is recorded on the Context. A bad magic tag fails before any
// buffer is allocated.
func (c *Context) LoadReader(r io.Reader) {
	if c == nil {
		return
	}
	if c.mode != Import {
		c.setError(ErrInvalidOperation)
		return
	}

	c.stream = stream{r: r}
	c.clearMesh()
	c.comment = ""

	if err := c.readHeaderAndAllocate(); err != nil {
		c.clearMesh()
		c.setError(errorCode(err, ErrFormatError))
		return
	}

	if err := codecFor(c.method).decode(c); err != nil {
		c.clearMesh()
		c.setError(errorCode(err, ErrFormatError))
	}
}

// readHeaderAndAllocate parses the fixed header and sizes the mesh buffers
// and map records from the counts it carries. Map names are filled in later
// by the payload codec.
func (c *Context) readHeaderAndAllocate() error {
	s := &c.stream

	magic, err := s.readTag()
	if err != nil {
		return err
	}
	if magic != Magic {
		return fmt.Errorf("%w: bad magic %q", ErrFormatError, magic)
	}

	version, err := s.readUint32()
	if err != nil {
		return err
	}
	if version != FormatVersion {
		return fmt.Errorf("%w: unsupported format version %d", ErrFormatError, version)
	}

	methodTag, err := s.readTag()
	if err != nil {
		return err
	}
	method, ok := methodFromTag(methodTag)
	if !ok {
		return fmt.Errorf("%w: unknown method tag %q", ErrFormatError, methodTag)
	}
	c.method = method

	vertexCount, err := s.readUint32()
	if err != nil {
		return err
	}
	if vertexCount == 0 {
		return fmt.Errorf("%w: zero vertex count", ErrFormatError)
	}
	triangleCount, err := s.readUint32()
	if err != nil {
		return err
	}
	if triangleCount == 0 {
		return fmt.Errorf("%w: zero triangle count", ErrFormatError)
	}

	texMapCount, err := s.readUint32()
	if err != nil {
		return err
	}
	attribMapCount, err := s.readUint32()
	if err != nil {
		return err
	}
	if texMapCount > maxMapCount || attribMapCount > maxMapCount {
		return fmt.Errorf("%w: map counts %d/%d exceed positional addressing range",
			ErrFormatError, texMapCount, attribMapCount)
	}

	flags, err := s.readUint32()
	if err != nil {
		return err
	}

	comment, err := s.readString()
	if err != nil {
		return err
	}
	c.comment = comment

	if vertexCount > maxElementCount || triangleCount > maxElementCount {
		return fmt.Errorf("%w: counts %d/%d exceed allocation ceiling",
			ErrOutOfMemory, vertexCount, triangleCount)
	}

	c.vertices = make([]float32, 3*vertexCount)
	c.indices = make([]uint32, 3*triangleCount)
	if flags&flagHasNormals != 0 {
		c.normals = make([]float32, 3*vertexCount)
	}
	c.texMaps = allocateMaps(texMapCount, texMapComponents, vertexCount)
	c.attribMaps = allocateMaps(attribMapCount, attribMapComponents, vertexCount)

	return nil
}

func allocateMaps(count, components, vertexCount uint32) []*floatMap {
	if count == 0 {
		return nil
	}
	list := make([]*floatMap, count)
	for i := range list {
		list[i] = &floatMap{
			values:     make([]float32, components*vertexCount),
			components: components,
		}
	}
	return list
}

// errorCode folds an internal error chain to the code carried in it, or to
// fallback for plain transport errors.
func errorCode(err error, fallback ErrorCode) ErrorCode {
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return fallback
}
