// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"pngstash-cli/internal/png"

	"github.com/spf13/cobra"
)

var (
	printRaw bool

	// printCmd lists the chunks of a file
	printCmd = &cobra.Command{
		Use:   "print <png>",
		Short: "List every chunk in the file",
		Long: `List every chunk in the file in on-disk order, with its type code,
data length, CRC, and the property flags encoded in the type's letter
case (critical/public/reserved/safe-to-copy).

With --raw, the validated file is re-serialized and its exact bytes are
written to stdout instead, suitable for piping or diffing.`,
		Args: cobra.ExactArgs(1),
		RunE: runPrint,
	}
)

func init() {
	printCmd.Flags().BoolVar(&printRaw, "raw", false, "write the serialized bytes to stdout instead of a listing")
}

func runPrint(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := loadPNG(path)
	if err != nil {
		return fail(err)
	}

	if printRaw {
		if _, err := os.Stdout.Write(f.Bytes()); err != nil {
			return fail(err)
		}
		return nil
	}

	chunks := f.Chunks()
	fmt.Println(TitleStyle.Render(path) + SubtitleStyle.Render(fmt.Sprintf("  %d chunks", len(chunks))))
	for i, chunk := range chunks {
		fmt.Printf("  %3d  %s  %8d bytes  crc %08x  %s\n",
			i,
			ChunkTypeStyle.Render(chunk.Type().String()),
			chunk.Length(),
			chunk.CRC(),
			SubtitleStyle.Render(flagString(chunk.Type())),
		)
	}
	return nil
}

// flagString renders the four case-encoded properties of a type code the way
// the PNG spec talks about them.
func flagString(ct png.ChunkType) string {
	crit := "ancillary"
	if ct.IsCritical() {
		crit = "critical"
	}
	vis := "private"
	if ct.IsPublic() {
		vis = "public"
	}
	copySafe := "unsafe-to-copy"
	if ct.IsSafeToCopy() {
		copySafe = "safe-to-copy"
	}
	if !ct.IsReservedBitValid() {
		return fmt.Sprintf("%s, %s, %s, reserved bit set", crit, vis, copySafe)
	}
	return fmt.Sprintf("%s, %s, %s", crit, vis, copySafe)
}
