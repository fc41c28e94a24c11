// Package docx builds minimal WordprocessingML (.docx) files in memory.
//
// A .docx is a ZIP container of XML parts. This package emits only the parts
// the generated certificates need: the main document, one header (used as a
// text watermark), core/extended properties, content types and relationships.
// Output is valid OOXML readable by Word, LibreOffice and the archive/zip +
// encoding/xml pipeline used elsewhere for extraction.
package docx

import (
	"bytes"
	"io"
	"time"
)

// Alignment values map to w:jc justification codes.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// Run is a contiguous span of text sharing one set of character properties.
type Run struct {
	Text      string
	Font      string
	SizePt    float64
	Bold      bool
	Underline bool
	Color     string // hex RGB without '#', empty for default
}

// Paragraph is a block of runs with one alignment.
type Paragraph struct {
	Alignment Alignment
	Runs      []Run
}

// CoreProperties populate docProps/core.xml for downstream indexing.
type CoreProperties struct {
	Title       string
	Subject     string
	Creator     string
	Description string
	Created     time.Time
}

// Document accumulates paragraphs and is serialized once via Write or Bytes.
// Page size is fixed US Letter with one inch margins on all sides.
type Document struct {
	body   []Paragraph
	header []Paragraph
	props  CoreProperties
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(align Alignment, runs ...Run) {
	d.body = append(d.body, Paragraph{Alignment: align, Runs: runs})
}

// AddEmptyParagraph appends vertical spacing.
func (d *Document) AddEmptyParagraph() {
	d.body = append(d.body, Paragraph{Alignment: AlignLeft})
}

// SetHeader replaces the page header paragraphs. The header repeats on every
// page, which is how the text watermark is carried.
func (d *Document) SetHeader(paragraphs ...Paragraph) {
	d.header = paragraphs
}

// SetProperties sets the core document properties.
func (d *Document) SetProperties(p CoreProperties) {
	d.props = p
}

// Paragraphs returns the accumulated body paragraphs.
func (d *Document) Paragraphs() []Paragraph {
	return d.body
}

// PlainText joins all body run text with newlines between paragraphs.
// Useful for asserting on rendered content without unzipping.
func (d *Document) PlainText() string {
	var buf bytes.Buffer
	for i, p := range d.body {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, r := range p.Runs {
			buf.WriteString(r.Text)
		}
	}
	return buf.String()
}

// Bytes serializes the document to an in-memory .docx archive.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the document archive to w.
func (d *Document) Write(w io.Writer) error {
	return writeArchive(w, d)
}
