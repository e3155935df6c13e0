package ctm

// Context is a single-mesh import or export session. It is not safe for
// concurrent use; all operations assume exclusive access.
type Context struct {
	mode Mode
	err  ErrorCode

	method          Method
	vertexPrecision float32
	comment         string

	// Mesh buffers. In Export mode these are the caller's slices, stored
	// verbatim and never mutated or reallocated. In Import mode they are
	// allocated by Load and replaced wholesale on the next load or Close.
	vertices []float32
	indices  []uint32
	normals  []float32

	texMaps    []*floatMap
	attribMaps []*floatMap

	stream stream
}

// NewImporter returns a Context for loading mesh data.
func NewImporter() *Context {
	return newContext(Import)
}

// NewExporter returns a Context for defining and saving mesh data.
func NewExporter() *Context {
	return newContext(Export)
}

func newContext(mode Mode) *Context {
	return &Context{
		mode:            mode,
		method:          MethodMG1,
		vertexPrecision: 1.0 / 1024.0,
	}
}

// Mode returns the mode the Context was created with.
func (c *Context) Mode() Mode {
	if c == nil {
		return 0
	}
	return c.mode
}

// Close releases the mesh and the comment. Import-owned buffers are dropped;
// Export-borrowed buffers stay with the caller. Safe to call on a nil
// Context and safe to call more than once.
func (c *Context) Close() {
	if c == nil {
		return
	}
	c.clearMesh()
	c.comment = ""
	c.err = ErrNone
}

// Err returns the pending error code and clears it. Once cleared, repeated
// calls return ErrNone until another operation fails. A nil Context yields
// ErrInvalidContext. Err never records a new error itself.
func (c *Context) Err() ErrorCode {
	if c == nil {
		return ErrInvalidContext
	}
	err := c.err
	c.err = ErrNone
	return err
}

// setError records a pending error code, replacing any unqueried one.
func (c *Context) setError(code ErrorCode) {
	c.err = code
}

// exportOnly records ErrInvalidOperation unless the Context is an exporter.
// Mode gating runs before any other validation in every mutator.
func (c *Context) exportOnly() bool {
	if c.mode != Export {
		c.setError(ErrInvalidOperation)
		return false
	}
	return true
}

// SetCompressionMethod selects the payload codec used by Save.
// Export mode only.
func (c *Context) SetCompressionMethod(method Method) {
	if c == nil {
		return
	}
	if !c.exportOnly() {
		return
	}
	if method != MethodRaw && method != MethodMG1 && method != MethodMG2 {
		c.setError(ErrInvalidArgument)
		return
	}
	c.method = method
}

// SetVertexPrecision sets the vertex quantization step used by the MG2
// codec. Export mode only; precision must be positive.
func (c *Context) SetVertexPrecision(precision float32) {
	if c == nil {
		return
	}
	if !c.exportOnly() {
		return
	}
	if precision <= 0 {
		c.setError(ErrInvalidArgument)
		return
	}
	c.vertexPrecision = precision
}

// SetComment attaches a comment string that is stored in the file header.
// An empty comment removes any previous one. Export mode only.
func (c *Context) SetComment(comment string) {
	if c == nil {
		return
	}
	if !c.exportOnly() {
		return
	}
	c.comment = comment
}
