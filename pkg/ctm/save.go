package ctm

import (
	"io"
	"os"
)

// Save writes the current mesh to a file. Export mode only. A path that
// cannot be created records ErrFileError; everything else behaves like
// SaveWriter.
func (c *Context) Save(path string) {
	if c == nil {
		return
	}
	if c.mode != Export {
		c.setError(ErrInvalidOperation)
		return
	}
	if !c.hasMesh() {
		c.setError(ErrInvalidMesh)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		c.setError(ErrFileError)
		return
	}
	defer f.Close()

	c.SaveWriter(f)
}

// SaveWriter writes the current mesh to any io.Writer: header first, then
// the payload through the selected codec. Export mode only.
//
// The mesh is verified before a single byte goes out: without vertices and
// indices the call records ErrInvalidMesh and writes nothing.
func (c *Context) SaveWriter(w io.Writer) {
	if c == nil {
		return
	}
	if c.mode != Export {
		c.setError(ErrInvalidOperation)
		return
	}
	if !c.hasMesh() {
		c.setError(ErrInvalidMesh)
		return
	}

	c.stream = stream{w: w}

	if err := c.writeHeader(); err != nil {
		c.setError(errorCode(err, ErrFileError))
		return
	}
	if err := codecFor(c.method).encode(c); err != nil {
		c.setError(errorCode(err, ErrFileError))
	}
}

// writeHeader emits the fixed-layout header for the current mesh.
func (c *Context) writeHeader() error {
	s := &c.stream

	var flags uint32
	if c.normals != nil {
		flags |= flagHasNormals
	}

	if err := s.writeTag(Magic); err != nil {
		return err
	}
	if err := s.writeUint32(FormatVersion); err != nil {
		return err
	}
	if err := s.writeTag(c.method.tag()); err != nil {
		return err
	}
	if err := s.writeUint32(c.VertexCount()); err != nil {
		return err
	}
	if err := s.writeUint32(c.TriangleCount()); err != nil {
		return err
	}
	if err := s.writeUint32(uint32(len(c.texMaps))); err != nil {
		return err
	}
	if err := s.writeUint32(uint32(len(c.attribMaps))); err != nil {
		return err
	}
	if err := s.writeUint32(flags); err != nil {
		return err
	}
	return s.writeString(c.comment)
}
