// Package ctm reads and writes OpenCTM compressed triangle mesh files.
//
// A Context is created in one of two modes: an importer loads a mesh from a
// stream and owns the resulting buffers, an exporter borrows caller-supplied
// buffers and serializes them. Failed operations record an error code on the
// Context which is returned and cleared by Err.
package ctm

import "fmt"

// Magic is the four byte tag at the start of every CTM file.
const Magic = "OCTM"

// FormatVersion is the only file format version this package accepts.
const FormatVersion uint32 = 1

// Mode selects whether a Context imports or exports mesh data.
// It is fixed when the Context is created.
type Mode int

// Context modes.
const (
	Import Mode = iota + 1
	Export
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Import:
		return "Import"
	case Export:
		return "Export"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Method selects the compression backend used for the payload.
type Method int

// Compression methods.
const (
	MethodRaw Method = iota + 1 // verbatim little-endian dump
	MethodMG1                   // delta + LZMA, lossless
	MethodMG2                   // quantized vertices + delta + LZMA
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodRaw:
		return "RAW"
	case MethodMG1:
		return "MG1"
	case MethodMG2:
		return "MG2"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// tag returns the four byte method tag written to the file header.
func (m Method) tag() string {
	switch m {
	case MethodRaw:
		return "RAW\x00"
	case MethodMG1:
		return "MG1\x00"
	case MethodMG2:
		return "MG2\x00"
	default:
		return "\x00\x00\x00\x00"
	}
}

// methodFromTag maps a header method tag back to a Method.
func methodFromTag(tag string) (Method, bool) {
	switch tag {
	case "RAW\x00":
		return MethodRaw, true
	case "MG1\x00":
		return MethodMG1, true
	case "MG2\x00":
		return MethodMG2, true
	default:
		return 0, false
	}
}

// ErrorCode identifies why a Context operation failed. The zero value
// ErrNone means no error is pending.
type ErrorCode int

// Error codes.
const (
	ErrNone             ErrorCode = iota // no pending error
	ErrInvalidContext                    // nil or closed Context
	ErrInvalidArgument                   // bad parameter value or range
	ErrInvalidOperation                  // operation not allowed in this mode
	ErrInvalidMesh                       // required mesh buffers missing or inconsistent
	ErrOutOfMemory                       // allocation would exceed sane limits
	ErrFileError                         // file could not be opened
	ErrFormatError                       // header or payload does not match the format
)

// Error implements the error interface so codes can travel through
// fmt.Errorf("%w", ...) chains inside the codecs.
func (e ErrorCode) Error() string {
	return e.String()
}

// String returns a human-readable error name.
func (e ErrorCode) String() string {
	switch e {
	case ErrNone:
		return "no error"
	case ErrInvalidContext:
		return "invalid context"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrInvalidOperation:
		return "invalid operation"
	case ErrInvalidMesh:
		return "invalid mesh"
	case ErrOutOfMemory:
		return "out of memory"
	case ErrFileError:
		return "file error"
	case ErrFormatError:
		return "format error"
	default:
		return fmt.Sprintf("unknown error (%d)", int(e))
	}
}

// Flag bits in the header flags field.
const flagHasNormals uint32 = 1 << 0

// Sanity ceilings for counts read from untrusted headers. Anything above
// these is rejected before allocation.
const (
	maxElementCount = 1 << 27 // vertices or triangles
	maxMapCount     = 256     // per map kind, bounded by positional addressing
	maxStringLength = 1 << 24 // comment and map names
)

// Per-vertex component widths for the two attribute map kinds.
const (
	texMapComponents    = 2
	attribMapComponents = 4
)
