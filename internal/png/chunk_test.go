// SPDX-License-Identifier: MPL-2.0

package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

const testMessage = "This is where your secret message will be!"

func testChunk(t *testing.T) *Chunk {
	t.Helper()
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	return NewChunk(ct, []byte(testMessage))
}

// serializeChunk builds a raw chunk buffer with arbitrary length and crc
// fields, so tests can produce deliberately inconsistent wire data.
func serializeChunk(length uint32, code [4]byte, data []byte, crc uint32) []byte {
	var out []byte
	out = binary.BigEndian.AppendUint32(out, length)
	out = append(out, code[:]...)
	out = append(out, data...)
	out = binary.BigEndian.AppendUint32(out, crc)
	return out
}

func TestNewChunk(t *testing.T) {
	c := testChunk(t)
	if got := c.Length(); got != uint32(len(testMessage)) {
		t.Errorf("Length() = %d, want %d", got, len(testMessage))
	}
	if got := c.Type().String(); got != "RuSt" {
		t.Errorf("Type() = %s, want RuSt", got)
	}
	if got := c.CRC(); got != 2882656334 {
		t.Errorf("CRC() = %d, want 2882656334", got)
	}
}

func TestNewChunk_CopiesData(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("mine now")
	c := NewChunk(ct, data)
	data[0] = 'X'
	if got := c.Data(); !bytes.Equal(got, []byte("mine now")) {
		t.Errorf("Data() = %q, caller mutation leaked into chunk", got)
	}
}

func TestChunkRoundTrip(t *testing.T) {
	c := testChunk(t)
	parsed, err := ParseChunk(c.Bytes())
	if err != nil {
		t.Fatalf("ParseChunk() error = %v", err)
	}
	if parsed.Type() != c.Type() {
		t.Errorf("Type() = %s, want %s", parsed.Type(), c.Type())
	}
	if parsed.Length() != c.Length() {
		t.Errorf("Length() = %d, want %d", parsed.Length(), c.Length())
	}
	if parsed.CRC() != c.CRC() {
		t.Errorf("CRC() = %d, want %d", parsed.CRC(), c.CRC())
	}
	if !bytes.Equal(parsed.Data(), c.Data()) {
		t.Error("data did not survive the round trip")
	}
}

func TestParseChunk_TamperedData(t *testing.T) {
	c := testChunk(t)
	raw := c.Bytes()

	// Flip one bit in every byte of the data and crc regions in turn; each
	// corruption must surface as a crc mismatch.
	for i := chunkLengthSize + chunkTypeSize; i < len(raw); i++ {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01
		if _, err := ParseChunk(tampered); !errors.Is(err, ErrCRCMismatch) {
			t.Fatalf("ParseChunk with bit flipped at %d: error = %v, want ErrCRCMismatch", i, err)
		}
	}
}

func TestParseChunk_InvalidTypeCode(t *testing.T) {
	data := []byte("payload")
	code := [4]byte{'R', 'u', '1', 't'}
	raw := serializeChunk(uint32(len(data)), code, data, checksum(code, data))
	if _, err := ParseChunk(raw); !errors.Is(err, ErrInvalidTypeCode) {
		t.Errorf("ParseChunk() error = %v, want ErrInvalidTypeCode", err)
	}
}

func TestParseChunk_Truncated(t *testing.T) {
	c := testChunk(t)
	raw := c.Bytes()

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty", raw: nil},
		{name: "partial length", raw: raw[:2]},
		{name: "no type code", raw: raw[:chunkLengthSize]},
		{name: "partial data", raw: raw[:chunkLengthSize+chunkTypeSize+5]},
		{name: "missing crc", raw: raw[:len(raw)-chunkCRCSize]},
		{name: "partial crc", raw: raw[:len(raw)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseChunk(tt.raw); !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("ParseChunk() error = %v, want ErrUnexpectedEOF", err)
			}
		})
	}
}

func TestParseChunk_HugeDeclaredLength(t *testing.T) {
	// A length field near the uint32 maximum must come back as a truncation
	// error on every architecture; a 32-bit int overflows to a negative
	// count and must not reach the slicing path.
	raw := []byte{0xFF, 0xFF, 0xFF, 0xFF, 'R', 'u', 'S', 't'}
	_, err := ParseChunk(raw)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ParseChunk() error = %v, want ErrUnexpectedEOF", err)
	}
	var eof *UnexpectedEOFError
	if !errors.As(err, &eof) {
		t.Fatalf("ParseChunk() error = %v, want *UnexpectedEOFError", err)
	}
	if eof.Need != 0xFFFFFFFF || eof.Have != 0 {
		t.Errorf("UnexpectedEOFError = need %d have %d, want need 4294967295 have 0", eof.Need, eof.Have)
	}
}

func TestParseChunk_TrailingBytesIgnored(t *testing.T) {
	c := testChunk(t)
	raw := append(c.Bytes(), 0xDE, 0xAD, 0xBE, 0xEF)
	parsed, err := ParseChunk(raw)
	if err != nil {
		t.Fatalf("ParseChunk() error = %v", err)
	}
	if parsed.CRC() != c.CRC() {
		t.Errorf("CRC() = %d, want %d", parsed.CRC(), c.CRC())
	}
}

func TestParseChunk_WrongCRC(t *testing.T) {
	c := testChunk(t)
	code := c.Type().Bytes()
	raw := serializeChunk(c.Length(), code, c.Data(), c.CRC()+1)
	var crcErr *CRCMismatchError
	_, err := ParseChunk(raw)
	if !errors.As(err, &crcErr) {
		t.Fatalf("ParseChunk() error = %v, want CRCMismatchError", err)
	}
	if crcErr.Stored != c.CRC()+1 || crcErr.Computed != c.CRC() {
		t.Errorf("CRCMismatchError = stored %d computed %d, want stored %d computed %d",
			crcErr.Stored, crcErr.Computed, c.CRC()+1, c.CRC())
	}
}

func TestChunkText(t *testing.T) {
	c := testChunk(t)
	text, err := c.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != testMessage {
		t.Errorf("Text() = %q, want %q", text, testMessage)
	}
}

func TestChunkText_InvalidUTF8(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, []byte{0xFF, 0xFE, 0xFD})
	if _, err := c.Text(); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Text() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestChunkText_EmptyData(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, nil)
	if c.Length() != 0 {
		t.Errorf("Length() = %d, want 0", c.Length())
	}
	text, err := c.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "" {
		t.Errorf("Text() = %q, want empty", text)
	}
}
