package ctm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// stream is the byte transport bound to a Context for the duration of one
// load or save. Any io.Reader/io.Writer pair can serve as the transport;
// both sides keep the usual short-count semantics of the io interfaces.
// Required fields are read with io.ReadFull, so a truncated stream surfaces
// as io.ErrUnexpectedEOF and is reported as ErrFormatError.
type stream struct {
	r io.Reader
	w io.Writer
}

func (s *stream) readUint32() (uint32, error) {
	var v uint32
	if err := binary.Read(s.r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("%w: reading uint32: %v", ErrFormatError, err)
	}
	return v, nil
}

func (s *stream) writeUint32(v uint32) error {
	return binary.Write(s.w, binary.LittleEndian, v)
}

func (s *stream) readFloat() (float32, error) {
	var v float32
	if err := binary.Read(s.r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("%w: reading float: %v", ErrFormatError, err)
	}
	return v, nil
}

func (s *stream) writeFloat(v float32) error {
	return binary.Write(s.w, binary.LittleEndian, v)
}

// readTag reads a four byte ASCII tag.
func (s *stream) readTag() (string, error) {
	var tag [4]byte
	if _, err := io.ReadFull(s.r, tag[:]); err != nil {
		return "", fmt.Errorf("%w: reading tag: %v", ErrFormatError, err)
	}
	return string(tag[:]), nil
}

func (s *stream) writeTag(tag string) error {
	if len(tag) != 4 {
		return fmt.Errorf("%w: tag %q is not 4 bytes", ErrFormatError, tag)
	}
	_, err := io.WriteString(s.w, tag)
	return err
}

// expectTag reads a tag and fails with ErrFormatError unless it matches.
func (s *stream) expectTag(want string) error {
	got, err := s.readTag()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected %q section, got %q", ErrFormatError, want, got)
	}
	return nil
}

// readString reads a uint32 length-prefixed string.
func (s *stream) readString() (string, error) {
	n, err := s.readUint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if n > maxStringLength {
		return "", fmt.Errorf("%w: string length %d exceeds limit", ErrFormatError, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return "", fmt.Errorf("%w: reading string: %v", ErrFormatError, err)
	}
	return string(buf), nil
}

func (s *stream) writeString(str string) error {
	if err := s.writeUint32(uint32(len(str))); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, str)
	return err
}

// readUint32Array fills dst with little-endian values.
func (s *stream) readUint32Array(dst []uint32) error {
	if err := binary.Read(s.r, binary.LittleEndian, dst); err != nil {
		return fmt.Errorf("%w: reading integer array: %v", ErrFormatError, err)
	}
	return nil
}

func (s *stream) writeUint32Array(src []uint32) error {
	return binary.Write(s.w, binary.LittleEndian, src)
}

// readFloatArray fills dst with little-endian IEEE 754 values.
func (s *stream) readFloatArray(dst []float32) error {
	if err := binary.Read(s.r, binary.LittleEndian, dst); err != nil {
		return fmt.Errorf("%w: reading float array: %v", ErrFormatError, err)
	}
	return nil
}

func (s *stream) writeFloatArray(src []float32) error {
	return binary.Write(s.w, binary.LittleEndian, src)
}

// writePacked LZMA-compresses data and writes it as a uint32 byte length
// followed by the compressed stream.
func (s *stream) writePacked(data []byte) error {
	var buf bytes.Buffer
	zw, err := lzma.NewWriter(&buf)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := s.writeUint32(uint32(buf.Len())); err != nil {
		return err
	}
	_, err = s.w.Write(buf.Bytes())
	return err
}

// readPacked reads one length-prefixed LZMA block and decompresses it into
// exactly size bytes.
func (s *stream) readPacked(size int) ([]byte, error) {
	n, err := s.readUint32()
	if err != nil {
		return nil, err
	}
	// LZMA never expands data past its input by more than a small header,
	// so anything much larger than the expected output is corrupt.
	if uint64(n) > uint64(size)+(1<<16) {
		return nil, fmt.Errorf("%w: packed block length %d exceeds limit", ErrFormatError, n)
	}
	packed := make([]byte, n)
	if _, err := io.ReadFull(s.r, packed); err != nil {
		return nil, fmt.Errorf("%w: reading packed block: %v", ErrFormatError, err)
	}
	zr, err := lzma.NewReader(bytes.NewReader(packed))
	if err != nil {
		return nil, fmt.Errorf("%w: opening packed block: %v", ErrFormatError, err)
	}
	out := make([]byte, size)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: unpacking block: %v", ErrFormatError, err)
	}
	return out, nil
}

// writePackedUints packs a uint32 slice as one LZMA block.
func (s *stream) writePackedUints(src []uint32) error {
	buf := make([]byte, 4*len(src))
	for i, v := range src {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return s.writePacked(buf)
}

// readPackedUints unpacks exactly len(dst) values.
func (s *stream) readPackedUints(dst []uint32) error {
	raw, err := s.readPacked(4 * len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return nil
}

// writePackedFloats packs a float32 slice bit-exactly.
func (s *stream) writePackedFloats(src []float32) error {
	var buf bytes.Buffer
	buf.Grow(4 * len(src))
	if err := binary.Write(&buf, binary.LittleEndian, src); err != nil {
		return err
	}
	return s.writePacked(buf.Bytes())
}

// readPackedFloats unpacks exactly len(dst) values.
func (s *stream) readPackedFloats(dst []float32) error {
	raw, err := s.readPacked(4 * len(dst))
	if err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(raw), binary.LittleEndian, dst)
}
