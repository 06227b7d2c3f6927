// SPDX-License-Identifier: MPL-2.0

package png

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Chunk sizes on the wire, in bytes.
const (
	chunkLengthSize = 4
	chunkTypeSize   = 4
	chunkCRCSize    = 4

	// chunkOverhead is the serialized size of a chunk minus its data.
	chunkOverhead = chunkLengthSize + chunkTypeSize + chunkCRCSize
)

// Chunk is one length/type/data/CRC record of a PNG stream. The length field
// counts only the data bytes; the CRC covers the type code and the data but
// not the length. A Chunk is immutable after construction: to change its
// content, build a new one with NewChunk.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk around the given data, computing the length and CRC
// fields. The data slice is copied; the caller keeps ownership of its slice.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{
		length:    uint32(len(owned)),
		chunkType: chunkType,
		data:      owned,
		crc:       checksum(chunkType.Bytes(), owned),
	}
}

// ParseChunk reads one chunk from the front of raw and cross-validates it:
// the type code must pass the strict byte rules, and the stored length and
// CRC must match values recomputed from the parsed type and data. Any
// mismatch fails the parse; nothing is silently corrected. Trailing bytes
// after the chunk are ignored.
func ParseChunk(raw []byte) (*Chunk, error) {
	return readChunk(&byteReader{buf: raw})
}

// readChunk consumes one chunk from the reader, leaving the cursor at the
// first byte past the chunk's CRC field.
func readChunk(r *byteReader) (*Chunk, error) {
	lengthBytes, err := r.take("length", chunkLengthSize)
	if err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(lengthBytes)

	typeBytes, err := r.take("type code", chunkTypeSize)
	if err != nil {
		return nil, err
	}
	chunkType, err := ChunkTypeFromBytes([4]byte(typeBytes))
	if err != nil {
		return nil, fmt.Errorf("parse chunk: %w", err)
	}

	// int cannot hold every uint32 length on 32-bit builds, so bound the
	// declared length against the remaining input before converting.
	if need := int64(length); need > int64(r.remaining()) {
		return nil, &UnexpectedEOFError{Field: "data", Need: need, Have: int64(r.remaining())}
	}
	data, err := r.take("data", int(length))
	if err != nil {
		return nil, err
	}

	crcBytes, err := r.take("crc", chunkCRCSize)
	if err != nil {
		return nil, err
	}
	storedCRC := binary.BigEndian.Uint32(crcBytes)

	chunk := NewChunk(chunkType, data)
	if chunk.length != length {
		return nil, &LengthMismatchError{Declared: length, Actual: chunk.length}
	}
	if chunk.crc != storedCRC {
		return nil, &CRCMismatchError{Stored: storedCRC, Computed: chunk.crc}
	}
	return chunk, nil
}

// Length returns the number of data bytes.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns a copy of the chunk's data bytes.
func (c *Chunk) Data() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// CRC returns the chunk's CRC-32 over type code and data.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Text decodes the chunk's data as UTF-8. There is no lossy fallback: data
// that is not valid UTF-8 yields an InvalidEncodingError.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", &InvalidEncodingError{Type: c.chunkType}
	}
	return string(c.data), nil
}

// Bytes serializes the chunk in wire order: big-endian length, type code,
// data, big-endian CRC. ParseChunk(c.Bytes()) reproduces c exactly.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, 0, chunkOverhead+len(c.data))
	out = binary.BigEndian.AppendUint32(out, c.length)
	code := c.chunkType.Bytes()
	out = append(out, code[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

// String summarizes the chunk for human output without dumping its data.
func (c *Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes, crc %08x)", c.chunkType, c.length, c.crc)
}

// byteReader is a cursor over an in-memory buffer. Every read is all or
// nothing: a short buffer yields an UnexpectedEOFError naming the field
// being read.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) take(field string, n int) ([]byte, error) {
	if rest := len(r.buf) - r.pos; rest < n {
		return nil, &UnexpectedEOFError{Field: field, Need: int64(n), Have: int64(rest)}
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *byteReader) remaining() int {
	return len(r.buf) - r.pos
}
