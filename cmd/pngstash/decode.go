// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"pngstash-cli/internal/issue"
	"pngstash-cli/internal/png"

	"github.com/spf13/cobra"
)

// decodeCmd reads a stashed message back out
var decodeCmd = &cobra.Command{
	Use:   "decode <png> <chunk-type>",
	Short: "Print the message stored in a chunk",
	Long: `Print the data of the first chunk with the given type, decoded as
UTF-8 text. Fails if the file has no such chunk or if the chunk's data
is not valid text (use 'pngstash print --raw' for binary data).`,
	Args: cobra.ExactArgs(2),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	path, typeArg := args[0], args[1]

	// Parse the type up front so a malformed code reads as a usage error,
	// not as "chunk not found".
	chunkType, err := png.ChunkTypeFromString(typeArg)
	if err != nil {
		return fail(issue.NewErrorContext().
			WithOperation("decode message").
			WithResource(typeArg).
			WithSuggestion("Chunk types are exactly 4 ASCII letters, e.g. ruSt").
			Wrap(err).
			BuildError())
	}

	f, err := loadPNG(path)
	if err != nil {
		return fail(err)
	}

	chunk := f.ChunkByType(typeArg)
	if chunk == nil {
		return fail(issue.NewErrorContext().
			WithOperation("decode message").
			WithResource(path).
			WithSuggestion("List chunks with 'pngstash print " + path + "'").
			WithSuggestion("Check the type code's case; ruSt and RuSt are different chunks").
			Wrap(&png.NotFoundError{Type: chunkType}).
			BuildError())
	}

	text, err := chunk.Text()
	if err != nil {
		return fail(issue.NewErrorContext().
			WithOperation("decode message").
			WithResource(path).
			WithSuggestion("The chunk exists but holds binary data; dump it with 'pngstash print " + path + " --raw'").
			Wrap(err).
			BuildError())
	}

	fmt.Println(text)
	return nil
}
