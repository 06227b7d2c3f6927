// SPDX-License-Identifier: MPL-2.0

package png

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the structured error types below. Callers can
// classify any failure from this package with errors.Is against one of these,
// or pull out the structured details with errors.As.
var (
	// ErrInvalidTypeCode is wrapped when a 4-byte or 4-character buffer
	// fails the PNG type code rules.
	ErrInvalidTypeCode = errors.New("invalid chunk type code")

	// ErrWrongLength is wrapped when a type code string is not exactly
	// 4 characters.
	ErrWrongLength = errors.New("chunk type must be 4 characters")

	// ErrUnexpectedEOF is wrapped when fewer bytes are available than a
	// parse step requires.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrLengthMismatch is wrapped when a chunk's declared length disagrees
	// with the actual size of its data segment.
	ErrLengthMismatch = errors.New("chunk length mismatch")

	// ErrCRCMismatch is wrapped when a chunk's stored CRC disagrees with the
	// CRC recomputed over its type and data.
	ErrCRCMismatch = errors.New("chunk crc mismatch")

	// ErrBadSignature is wrapped when a buffer does not start with the PNG
	// magic bytes.
	ErrBadSignature = errors.New("bad png signature")

	// ErrInvalidEncoding is wrapped when chunk data requested as text is not
	// valid UTF-8.
	ErrInvalidEncoding = errors.New("chunk data is not valid utf-8")

	// ErrChunkNotFound is wrapped when no chunk of the requested type exists.
	ErrChunkNotFound = errors.New("no chunk with requested type")
)

type (
	// InvalidTypeCodeError is returned by the strict byte constructor when the
	// candidate bytes fail the PNG spec rules (non-alphabetic byte, or a
	// lowercase reserved-bit byte).
	InvalidTypeCodeError struct {
		Raw [4]byte
	}

	// WrongLengthError is returned by the string constructor when the input is
	// not exactly 4 characters long.
	WrongLengthError struct {
		Value string
	}

	// InvalidCharacterError is returned by the string constructor when a byte
	// of the input is not an ASCII letter. Byte and Index identify the
	// offending character.
	InvalidCharacterError struct {
		Value string
		Byte  byte
		Index int
	}

	// UnexpectedEOFError is returned when a parse step needs more bytes than
	// the input has left.
	UnexpectedEOFError struct {
		Field string // which field was being read
		Need  int64
		Have  int64
	}

	// LengthMismatchError is returned when a parsed chunk's stored length
	// field disagrees with the size of the data actually read.
	LengthMismatchError struct {
		Declared uint32
		Actual   uint32
	}

	// CRCMismatchError is returned when the CRC recomputed over a parsed
	// chunk's type and data disagrees with the stored CRC field.
	CRCMismatchError struct {
		Stored   uint32
		Computed uint32
	}

	// BadSignatureError is returned when the leading 8 bytes of a buffer are
	// not the standard PNG magic.
	BadSignatureError struct {
		Got []byte
	}

	// InvalidEncodingError is returned when chunk data cannot be decoded as
	// UTF-8 text.
	InvalidEncodingError struct {
		Type ChunkType
	}

	// NotFoundError is returned by RemoveChunk when no chunk matches the
	// requested type.
	NotFoundError struct {
		Type ChunkType
	}
)

func (e *InvalidTypeCodeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidTypeCode, e.Raw[:])
}

// Unwrap returns ErrInvalidTypeCode for errors.Is classification.
func (e *InvalidTypeCodeError) Unwrap() error { return ErrInvalidTypeCode }

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrWrongLength, len(e.Value))
}

func (e *WrongLengthError) Unwrap() error { return ErrWrongLength }

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v: byte %d at index %d is not an ascii letter", ErrInvalidTypeCode, e.Byte, e.Index)
}

// Unwrap returns ErrInvalidTypeCode: a bad character makes the whole code
// invalid, so both string-constructor failures classify the same way.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidTypeCode }

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("%v: reading %s needs %d bytes, %d available", ErrUnexpectedEOF, e.Field, e.Need, e.Have)
}

func (e *UnexpectedEOFError) Unwrap() error { return ErrUnexpectedEOF }

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: declared %d, actual %d", ErrLengthMismatch, e.Declared, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("%v: stored %08x, computed %08x", ErrCRCMismatch, e.Stored, e.Computed)
}

func (e *CRCMismatchError) Unwrap() error { return ErrCRCMismatch }

func (e *BadSignatureError) Error() string {
	return fmt.Sprintf("%v: got % x", ErrBadSignature, e.Got)
}

func (e *BadSignatureError) Unwrap() error { return ErrBadSignature }

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("%v: chunk %s", ErrInvalidEncoding, e.Type)
}

func (e *InvalidEncodingError) Unwrap() error { return ErrInvalidEncoding }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrChunkNotFound, e.Type)
}

func (e *NotFoundError) Unwrap() error { return ErrChunkNotFound }
