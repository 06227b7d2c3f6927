// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"pngstash-cli/internal/issue"

	"github.com/spf13/cobra"
)

// removeCmd deletes a stashed chunk
var removeCmd = &cobra.Command{
	Use:   "remove <png> <chunk-type>",
	Short: "Delete the first chunk of the given type",
	Long: `Delete the first chunk with the given type and rewrite the file in
place. Later chunks of the same type survive; run the command again to
remove them one at a time.`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	path, typeArg := args[0], args[1]

	f, err := loadPNG(path)
	if err != nil {
		return fail(err)
	}

	removed, err := f.RemoveChunk(typeArg)
	if err != nil {
		return fail(issue.NewErrorContext().
			WithOperation("remove chunk").
			WithResource(path).
			WithSuggestion("List chunks with 'pngstash print " + path + "'").
			Wrap(err).
			BuildError())
	}

	if err := savePNG(path, f, cfg.Encode.Backup); err != nil {
		return fail(err)
	}

	fmt.Printf("%s Removed chunk %s (%d bytes) from %s\n",
		SuccessStyle.Render("✓"), ChunkTypeStyle.Render(removed.Type().String()), removed.Length(), path)
	return nil
}
