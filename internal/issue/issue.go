// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	NotAPngId
	CorruptChunkId
	TruncatedFileId
	InvalidTypeCodeId
	ChunkNotFoundId
	NotTextDataId
	ConfigLoadFailedId
	WriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference material about the failure class
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# File not found!

We could not open the PNG file you pointed us at.

## Things you can try:
- Check the path for typos
- Make sure the file exists and is readable:
~~~
$ ls -l <your-file.png>
~~~`,
	}

	notAPngIssue = &Issue{
		id: NotAPngId,
		mdMsg: `
# Not a PNG file!

The file does not start with the PNG signature, so it is either not a PNG
at all or its first 8 bytes have been damaged.

## Every PNG starts with these bytes:
~~~
89 50 4E 47 0D 0A 1A 0A
~~~

## Things you can try:
- Inspect the first bytes yourself:
~~~
$ xxd -l 8 <your-file.png>
~~~
- If you renamed a JPEG or GIF to .png, convert it to a real PNG first`,
		extLinks: []HttpLink{
			"http://www.libpng.org/pub/png/spec/1.2/PNG-Structure.html",
		},
	}

	corruptChunkIssue = &Issue{
		id: CorruptChunkId,
		mdMsg: `
# Corrupt chunk!

A chunk's stored CRC does not match the checksum recomputed over its type
and data, or its declared length disagrees with the data that follows.
The file was damaged after it was written.

## Things you can try:
- Run the structural report to see which chunk is bad:
~~~
$ pngstash verify <your-file.png>
~~~
- Restore the file from a backup or re-download it
- Nothing in this tool rewrites CRCs silently: a mismatch always fails`,
		extLinks: []HttpLink{
			"http://www.libpng.org/pub/png/spec/1.2/PNG-CRCAppendix.html",
		},
	}

	truncatedFileIssue = &Issue{
		id: TruncatedFileId,
		mdMsg: `
# Truncated file!

The file ended in the middle of a chunk. A chunk needs its full
length, type, data, and CRC fields; this one was cut short.

## Things you can try:
- Re-download or re-copy the file (partial transfers are the usual cause)
- Run the structural report to see how far parsing got:
~~~
$ pngstash verify <your-file.png>
~~~`,
	}

	invalidTypeCodeIssue = &Issue{
		id: InvalidTypeCodeId,
		mdMsg: `
# Invalid chunk type!

Chunk types are exactly 4 ASCII letters (A-Z or a-z). The case of each
letter matters:

| position | uppercase means |
|----------|-----------------|
| 1st      | critical        |
| 2nd      | public          |
| 3rd      | reserved bit ok |
| 4th      | NOT safe to copy|

## Things you can try:
- Pick a 4-letter code like ` + "`ruSt`" + ` (ancillary, private, safe to copy)
- Keep the third letter uppercase; lowercase there is reserved by the PNG specification`,
		extLinks: []HttpLink{
			"http://www.libpng.org/pub/png/spec/1.2/PNG-Chunks.html",
		},
	}

	chunkNotFoundIssue = &Issue{
		id: ChunkNotFoundId,
		mdMsg: `
# No such chunk!

The file parsed fine, but no chunk of the requested type is present.

## Things you can try:
- List every chunk in the file:
~~~
$ pngstash print <your-file.png>
~~~
- Check the type code's case: ` + "`ruSt`" + ` and ` + "`RuSt`" + ` are different chunks`,
	}

	notTextDataIssue = &Issue{
		id: NotTextDataId,
		mdMsg: `
# Chunk data is not text!

The chunk exists, but its data is not valid UTF-8, so it cannot be
printed as a message. This tool never does lossy decoding.

## Things you can try:
- Dump the raw bytes instead:
~~~
$ pngstash print <your-file.png> --raw
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the pngstash configuration file.

## Configuration file locations:
- Linux: ~/.config/pngstash/config.toml
- macOS: ~/Library/Application Support/pngstash/config.toml
- Windows: %APPDATA%\pngstash\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ pngstash config init
~~~

- Check the TOML syntax
- Remove the config file to use defaults`,
	}

	writeFailedIssue = &Issue{
		id: WriteFailedId,
		mdMsg: `
# Failed to write file!

The new PNG bytes could not be written out.

## Common causes:
- The target directory does not exist
- No write permission on the file or directory
- Disk full

## Things you can try:
- Write to a different path with ` + "`--output`" + `
- Check permissions on the target`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():     fileNotFoundIssue,
		notAPngIssue.Id():          notAPngIssue,
		corruptChunkIssue.Id():     corruptChunkIssue,
		truncatedFileIssue.Id():    truncatedFileIssue,
		invalidTypeCodeIssue.Id():  invalidTypeCodeIssue,
		chunkNotFoundIssue.Id():    chunkNotFoundIssue,
		notTextDataIssue.Id():      notTextDataIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		writeFailedIssue.Id():      writeFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
