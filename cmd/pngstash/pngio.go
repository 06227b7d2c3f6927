// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"

	"pngstash-cli/internal/issue"
	"pngstash-cli/internal/png"
)

// loadPNG reads path fully into memory and parses it. All I/O stays here in
// the shell; the core only ever sees the byte buffer.
func loadPNG(path string) (*png.File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read png").
			WithResource(path).
			WithSuggestion("Check the path for typos").
			WithSuggestion("Make sure the file exists and is readable").
			Wrap(err).
			BuildError()
	}
	logger.Debug("read file", "path", path, "bytes", len(raw))

	f, err := png.Parse(raw)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse png").
			WithResource(path).
			WithSuggestion("Run 'pngstash verify " + path + "' for a structural report").
			Wrap(err).
			BuildError()
	}
	logger.Debug("parsed file", "path", path, "chunks", len(f.Chunks()))
	return f, nil
}

// errWriteFailed marks save-side failures so issueFor can route them to the
// write-failure guidance card.
var errWriteFailed = errors.New("write failed")

// savePNG serializes f and rewrites path. os.WriteFile truncates first, so a
// shrinking rewrite never leaves stale trailing bytes. When backup is set,
// the original content is copied to <path>.bak before the rewrite.
func savePNG(path string, f *png.File, backup bool) error {
	if backup {
		if original, err := os.ReadFile(path); err == nil {
			if err := os.WriteFile(path+".bak", original, 0o644); err != nil {
				return issue.WrapWithContext(errors.Join(errWriteFailed, err), "write backup", path+".bak")
			}
			logger.Debug("wrote backup", "path", path+".bak")
		}
	}

	raw := f.Bytes()
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("write png").
			WithResource(path).
			WithSuggestion("Check permissions on the target").
			WithSuggestion("Write to a different path with --output").
			Wrap(errors.Join(errWriteFailed, err)).
			BuildError()
	}
	logger.Debug("wrote file", "path", path, "bytes", len(raw))
	return nil
}

// issueFor maps a core error to the Issue describing its failure class, or
// nil when no curated guidance exists. Verbose mode renders the issue after
// the error message.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, png.ErrBadSignature):
		return issue.Get(issue.NotAPngId)
	case errors.Is(err, png.ErrCRCMismatch), errors.Is(err, png.ErrLengthMismatch):
		return issue.Get(issue.CorruptChunkId)
	case errors.Is(err, png.ErrUnexpectedEOF):
		return issue.Get(issue.TruncatedFileId)
	case errors.Is(err, png.ErrInvalidTypeCode), errors.Is(err, png.ErrWrongLength):
		return issue.Get(issue.InvalidTypeCodeId)
	case errors.Is(err, png.ErrChunkNotFound):
		return issue.Get(issue.ChunkNotFoundId)
	case errors.Is(err, png.ErrInvalidEncoding):
		return issue.Get(issue.NotTextDataId)
	case errors.Is(err, errWriteFailed):
		return issue.Get(issue.WriteFailedId)
	case errors.Is(err, os.ErrNotExist):
		return issue.Get(issue.FileNotFoundId)
	}
	return nil
}

// issueStyle is the glamour style used when rendering issue cards, taken
// from the ui.color_scheme configuration key.
func issueStyle() string {
	return cfg.UI.ColorScheme.String()
}

// fail wraps err for cobra, rendering the matching issue card first when
// verbose mode is on.
func fail(err error) error {
	if err == nil {
		return nil
	}
	if verbose {
		if is := issueFor(err); is != nil {
			if rendered, renderErr := is.Render(issueStyle()); renderErr == nil {
				os.Stderr.WriteString(rendered)
			}
		}
	}
	return err
}
