// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"pngstash-cli/internal/issue"
	"pngstash-cli/internal/png"

	"github.com/spf13/cobra"
)

var (
	encodeOutput string

	// encodeCmd stashes a message in a new chunk
	encodeCmd = &cobra.Command{
		Use:   "encode <png> <chunk-type> <message>",
		Short: "Stash a message in a new chunk",
		Long: `Stash a message in a new chunk of the given type.

The chunk is inserted just before the file's last chunk, so a terminal
IEND chunk stays terminal. The chunk type must be 4 ASCII letters;
ancillary, private, safe-to-copy codes like 'ruSt' are the safe choice
for hidden data (decoders skip chunks they do not recognize).

By default the file is rewritten in place. Use --output to write the
result elsewhere and leave the input untouched.`,
		Args: cobra.ExactArgs(3),
		RunE: runEncode,
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "write the result to this path instead of rewriting in place")
}

func runEncode(cmd *cobra.Command, args []string) error {
	path, typeArg, message := args[0], args[1], args[2]

	chunkType, err := png.ChunkTypeFromString(typeArg)
	if err != nil {
		return fail(issue.NewErrorContext().
			WithOperation("encode message").
			WithResource(typeArg).
			WithSuggestion("Chunk types are exactly 4 ASCII letters, e.g. ruSt").
			Wrap(err).
			BuildError())
	}
	if !chunkType.IsValid() {
		// Well-formed but spec-invalid codes (lowercase third letter) are
		// allowed through; the user gets told what they are doing.
		fmt.Println(WarningStyle.Render("Warning: ") + fmt.Sprintf("chunk type %s has its reserved bit set (lowercase third letter); strict decoders may reject the file", ChunkTypeStyle.Render(typeArg)))
	}

	f, err := loadPNG(path)
	if err != nil {
		return fail(err)
	}

	f.AppendChunk(png.NewChunk(chunkType, []byte(message)))

	target := encodeOutput
	inPlace := target == ""
	if inPlace {
		if !cfg.Encode.InPlaceDefault {
			return fail(issue.NewErrorContext().
				WithOperation("encode message").
				WithResource(path).
				WithSuggestion("Pass --output <path> to choose a destination").
				WithSuggestion("Or set encode.in_place_default = true in your config").
				Wrap(fmt.Errorf("in-place rewrites are disabled by configuration")).
				BuildError())
		}
		target = path
	}

	if err := savePNG(target, f, inPlace && cfg.Encode.Backup); err != nil {
		return fail(err)
	}

	fmt.Printf("%s Stashed %d bytes in chunk %s of %s\n",
		SuccessStyle.Render("✓"), len(message), ChunkTypeStyle.Render(typeArg), target)
	return nil
}
