// SPDX-License-Identifier: MPL-2.0

package png

import "bytes"

// SignatureSize is the length of the PNG magic in bytes.
const SignatureSize = 8

// Signature is the fixed 8-byte magic that opens every PNG stream.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// File is a PNG stream modeled as its signature plus an ordered chunk
// sequence. The order is the on-disk order. File does not enforce the
// IHDR-first/IEND-last convention; it only guarantees that every chunk it
// holds passed (or would pass) per-chunk validation. Keeping a terminal IEND
// chunk at the tail is the caller's job, which AppendChunk cooperates with
// by inserting before the last chunk rather than after it.
type File struct {
	signature [SignatureSize]byte
	chunks    []*Chunk
}

// Parse reads a full PNG byte buffer: the 8-byte signature followed by
// chunks until the buffer is exhausted. The first per-chunk failure aborts
// the whole parse; there is no partial result.
func Parse(raw []byte) (*File, error) {
	r := &byteReader{buf: raw}
	sig, err := r.take("signature", SignatureSize)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(sig, Signature[:]) {
		return nil, &BadSignatureError{Got: append([]byte(nil), sig...)}
	}

	f := &File{signature: Signature}
	for r.remaining() > 0 {
		chunk, err := readChunk(r)
		if err != nil {
			return nil, err
		}
		f.chunks = append(f.chunks, chunk)
	}
	return f, nil
}

// FromChunks builds a File around an existing chunk sequence. No structural
// checks are performed; the caller vouches for chunk order and content.
func FromChunks(chunks []*Chunk) *File {
	return &File{
		signature: Signature,
		chunks:    append([]*Chunk(nil), chunks...),
	}
}

// Signature returns the file's 8 magic bytes.
func (f *File) Signature() [SignatureSize]byte {
	return f.signature
}

// Chunks returns the chunk sequence in on-disk order. The slice is a copy;
// the chunks themselves are shared but immutable.
func (f *File) Chunks() []*Chunk {
	return append([]*Chunk(nil), f.chunks...)
}

// AppendChunk adds a chunk at the end of the sequence but before the current
// last chunk, so a terminal IEND stays terminal. The position rule is purely
// positional: neither the new chunk's type nor the last chunk's type is
// inspected. An empty sequence just gains its first element.
func (f *File) AppendChunk(chunk *Chunk) {
	if len(f.chunks) == 0 {
		f.chunks = append(f.chunks, chunk)
		return
	}
	last := f.chunks[len(f.chunks)-1]
	f.chunks[len(f.chunks)-1] = chunk
	f.chunks = append(f.chunks, last)
}

// RemoveChunk removes and returns the first chunk whose type matches
// typeString. The string goes through ChunkTypeFromString, so spec-invalid
// but well-formed codes are legal search targets; its errors propagate
// unchanged. A miss is a NotFoundError, unlike ChunkByType's nil result.
func (f *File) RemoveChunk(typeString string) (*Chunk, error) {
	target, err := ChunkTypeFromString(typeString)
	if err != nil {
		return nil, err
	}
	for i, chunk := range f.chunks {
		if chunk.Type() == target {
			f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
			return chunk, nil
		}
	}
	return nil, &NotFoundError{Type: target}
}

// ChunkByType returns the first chunk whose type matches typeString, or nil
// when there is no match or the type string itself does not parse. Lookup
// never reports an error; only removal does.
func (f *File) ChunkByType(typeString string) *Chunk {
	target, err := ChunkTypeFromString(typeString)
	if err != nil {
		return nil
	}
	for _, chunk := range f.chunks {
		if chunk.Type() == target {
			return chunk
		}
	}
	return nil
}

// Bytes serializes the file: signature followed by every chunk's wire form
// in sequence order. Parse(f.Bytes()) reproduces f for any file built from
// successful parses or NewChunk chunks.
func (f *File) Bytes() []byte {
	size := SignatureSize
	for _, chunk := range f.chunks {
		size += chunkOverhead + len(chunk.data)
	}
	out := make([]byte, 0, size)
	out = append(out, f.signature[:]...)
	for _, chunk := range f.chunks {
		out = append(out, chunk.Bytes()...)
	}
	return out
}
