package generator

import (
	"fmt"
	"strings"

	"unidocs/internal/docx"
	"unidocs/internal/model"
)

const (
	fontSerif = "Times New Roman"

	watermarkText  = "OFFICIAL DOCUMENT"
	registrarLine  = "Office of the Registrar"
	registrarTitle = "Registrar"
	authorName     = "University Registrar Office"

	separatorRule = 80
	signatureRule = 40
)

// Compose assembles the full document for one generation request: watermark
// header, logo placeholder, university header, title, rendered body, footer
// and core-properties metadata. It is a pure function of its inputs plus the
// generator clock; the only call-to-call variation at identical inputs is the
// footer date and metadata timestamps.
func (g *Generator) Compose(profile model.UniversityProfile, tpl model.DocumentTemplate, student model.StudentData) (*docx.Document, error) {
	body, err := renderBody(tpl.Body, student)
	if err != nil {
		return nil, err
	}

	now := g.now()
	doc := docx.New()

	// Repeating page header doubles as the watermark.
	doc.SetHeader(docx.Paragraph{
		Alignment: docx.AlignCenter,
		Runs:      []docx.Run{{Text: watermarkText, Font: "Arial", SizePt: 60, Color: "D3D3D3"}},
	})

	// Logo placeholder block; sourcing real logo assets is out of scope.
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: fmt.Sprintf("[%s LOGO]", profile.Name), SizePt: 14, Bold: true})

	// University header block.
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: strings.ToUpper(profile.Name), Font: fontSerif, SizePt: 24, Bold: true})
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: registrarLine, Font: fontSerif, SizePt: 16})
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: profile.Address, Font: fontSerif, SizePt: 12})
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: "Tel: " + profile.Phone, Font: fontSerif, SizePt: 12})
	doc.AddParagraph(docx.AlignLeft,
		docx.Run{Text: strings.Repeat("_", separatorRule)})

	// Title block.
	doc.AddEmptyParagraph()
	doc.AddParagraph(docx.AlignCenter,
		docx.Run{Text: tpl.Title, Font: fontSerif, SizePt: 20, Bold: true, Underline: true})
	doc.AddEmptyParagraph()

	// Body block.
	doc.AddParagraph(docx.AlignJustify,
		docx.Run{Text: body, Font: fontSerif, SizePt: 12})

	// Footer block: date, place, signature rule, registrar, seal stand-in.
	doc.AddEmptyParagraph()
	doc.AddParagraph(docx.AlignLeft,
		docx.Run{Text: "Date: " + now.Format("January 02, 2006"), Font: fontSerif, SizePt: 12})
	doc.AddParagraph(docx.AlignLeft,
		docx.Run{Text: "Place: " + profile.Name, Font: fontSerif, SizePt: 12})
	doc.AddEmptyParagraph()
	doc.AddParagraph(docx.AlignRight,
		docx.Run{Text: strings.Repeat("_", signatureRule), Font: fontSerif, SizePt: 12})
	doc.AddParagraph(docx.AlignRight,
		docx.Run{Text: registrarTitle, Font: fontSerif, SizePt: 12, Bold: true})
	doc.AddParagraph(docx.AlignRight,
		docx.Run{Text: profile.Name, Font: fontSerif, SizePt: 10})

	doc.SetProperties(docx.CoreProperties{
		Title:       fmt.Sprintf("%s - %s", typeLabel(tpl.TypeCode), student.StudentName),
		Subject:     "University Document: " + tpl.TypeCode,
		Creator:     authorName,
		Description: fmt.Sprintf("Generated for %s on %s", student.StudentName, now.Format("2006-01-02 15:04:05")),
		Created:     now,
	})

	return doc, nil
}

// typeLabel capitalizes each letter group of a type code: "fee_structure"
// becomes "Fee_Structure".
func typeLabel(code string) string {
	var b strings.Builder
	upper := true
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z' && upper:
			b.WriteRune(r - 32)
			upper = false
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			upper = false
		default:
			b.WriteRune(r)
			upper = true
		}
	}
	return b.String()
}
