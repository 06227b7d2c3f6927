// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"

	"pngstash-cli/internal/png"
)

// ChunkSpec describes one chunk of a PNG fixture.
type ChunkSpec struct {
	Type string
	Data string
}

// BuildPNG serializes a PNG byte buffer holding the given chunks, in order.
// Type codes go through the string constructor, so spec-invalid but
// well-formed codes are allowed in fixtures.
func BuildPNG(t testing.TB, specs ...ChunkSpec) []byte {
	t.Helper()
	chunks := make([]*png.Chunk, 0, len(specs))
	for _, spec := range specs {
		ct, err := png.ChunkTypeFromString(spec.Type)
		if err != nil {
			t.Fatalf("bad fixture chunk type %q: %v", spec.Type, err)
		}
		chunks = append(chunks, png.NewChunk(ct, []byte(spec.Data)))
	}
	return png.FromChunks(chunks).Bytes()
}

// MinimalPNG returns a small well-formed stream: a header-ish chunk, one
// payload chunk, and a terminal IEND.
func MinimalPNG(t testing.TB) []byte {
	t.Helper()
	return BuildPNG(t,
		ChunkSpec{Type: "FrSt", Data: "I am the first chunk"},
		ChunkSpec{Type: "miDl", Data: "I am another chunk"},
		ChunkSpec{Type: "IEND"},
	)
}

// WritePNG writes a PNG fixture into dir and returns its path.
func WritePNG(t testing.TB, dir, name string, specs ...ChunkSpec) string {
	t.Helper()
	path := filepath.Join(dir, name)
	MustWriteFile(t, path, BuildPNG(t, specs...))
	return path
}
