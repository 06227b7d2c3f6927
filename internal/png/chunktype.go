// SPDX-License-Identifier: MPL-2.0

// Package png models the PNG container format at the chunk level: the 4-byte
// chunk type codes, the length/type/data/CRC chunk records, and the full
// signature-plus-chunks file layout. It parses, validates, and mutates chunk
// sequences without ever interpreting chunk payloads (IDAT is never inflated,
// pixels are never decoded).
//
// This package is a leaf dependency: it imports only the standard library.
// It performs no I/O and no logging; callers hand it fully-read byte buffers
// and present its errors however they see fit.
package png

import "unicode/utf8"

// ChunkType is a 4-byte chunk type code. The case of each byte carries the
// PNG spec's property bits: byte 0 critical/ancillary, byte 1 public/private,
// byte 2 the reserved bit, byte 3 safe-to-copy.
//
// ChunkType is a comparable value type; == is byte-wise equality.
type ChunkType struct {
	code [4]byte
}

// ChunkTypeFromBytes constructs a ChunkType from raw bytes read out of a PNG
// stream. It enforces the full spec rules: every byte must be an ASCII letter
// and the reserved bit must be valid (third byte uppercase). On failure it
// returns an InvalidTypeCodeError and the zero ChunkType.
//
// This is deliberately stricter than ChunkTypeFromString: bytes from the wire
// must be fully spec-valid, while user-supplied strings only need to be
// well-formed 4-letter codes.
func ChunkTypeFromBytes(raw [4]byte) (ChunkType, error) {
	ct := ChunkType{code: raw}
	if !ct.IsValid() {
		return ChunkType{}, &InvalidTypeCodeError{Raw: raw}
	}
	return ct, nil
}

// ChunkTypeFromString constructs a ChunkType from a user-supplied string such
// as a command line argument. The string must be exactly 4 ASCII letters, but
// the reserved-bit rule is not enforced: "Rust" parses fine here even though
// its lowercase third letter makes it spec-invalid. Callers that need full
// validity must check IsValid themselves.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &WrongLengthError{Value: s}
	}
	var ct ChunkType
	for i := 0; i < 4; i++ {
		b := s[i]
		if !isASCIILetter(b) {
			return ChunkType{}, &InvalidCharacterError{Value: s, Byte: b, Index: i}
		}
		ct.code[i] = b
	}
	return ct, nil
}

// Bytes returns a copy of the 4 type code bytes.
func (ct ChunkType) Bytes() [4]byte {
	return ct.code
}

// IsValid reports whether the type code satisfies the PNG spec: all four
// bytes are ASCII letters and the reserved bit is valid.
func (ct ChunkType) IsValid() bool {
	for _, b := range ct.code {
		if !isASCIILetter(b) {
			return false
		}
	}
	return ct.IsReservedBitValid()
}

// IsCritical reports whether the chunk is critical to displaying the image
// (first byte uppercase). Ancillary chunks can be dropped by editors.
func (ct ChunkType) IsCritical() bool {
	return isASCIIUpper(ct.code[0])
}

// IsPublic reports whether the type code is from the public registry
// (second byte uppercase).
func (ct ChunkType) IsPublic() bool {
	return isASCIIUpper(ct.code[1])
}

// IsReservedBitValid reports whether the reserved bit is zero (third byte
// uppercase). The PNG specification reserves lowercase third letters for future use.
func (ct ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(ct.code[2])
}

// IsSafeToCopy reports whether an editor that does not recognize this chunk
// may copy it into a modified file (fourth byte lowercase).
func (ct ChunkType) IsSafeToCopy() bool {
	return isASCIILower(ct.code[3])
}

// String renders the type code as text. ASCII letters are always valid
// UTF-8, so the fallback only fires for codes built from arbitrary bytes.
func (ct ChunkType) String() string {
	if !utf8.Valid(ct.code[:]) {
		return "Unknown"
	}
	return string(ct.code[:])
}

func isASCIILetter(b byte) bool {
	return isASCIIUpper(b) || isASCIILower(b)
}

func isASCIIUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isASCIILower(b byte) bool {
	return b >= 'a' && b <= 'z'
}
