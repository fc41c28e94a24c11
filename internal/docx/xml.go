package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// OOXML part serialization. Tag names carry explicit namespace prefixes since
// encoding/xml does not manage prefix bindings on marshal; the prefixes are
// declared once on each root element.

const (
	nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRels = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/><Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/></Types>`

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/><Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/></Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/></Relationships>`

const appPropsXML = xml.Header + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"><Application>unidocs</Application></Properties>`

type xmlValAttr struct {
	Val string `xml:"w:val,attr"`
}

type xmlFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

// Field order follows the CT_RPr schema sequence.
type xmlRunProps struct {
	Fonts     *xmlFonts   `xml:"w:rFonts"`
	Bold      *struct{}   `xml:"w:b"`
	Color     *xmlValAttr `xml:"w:color"`
	Size      *xmlValAttr `xml:"w:sz"`
	SizeCS    *xmlValAttr `xml:"w:szCs"`
	Underline *xmlValAttr `xml:"w:u"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Text  string `xml:",chardata"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"w:rPr"`
	Text  xmlText      `xml:"w:t"`
}

type xmlParaProps struct {
	Justify *xmlValAttr `xml:"w:jc"`
}

type xmlPara struct {
	Props *xmlParaProps `xml:"w:pPr"`
	Runs  []xmlRun      `xml:"w:r"`
}

type xmlHeaderRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xmlPageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type xmlPageMargins struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

type xmlSectPr struct {
	HeaderRef *xmlHeaderRef  `xml:"w:headerReference"`
	PageSize  xmlPageSize    `xml:"w:pgSz"`
	Margins   xmlPageMargins `xml:"w:pgMar"`
}

type xmlBody struct {
	Paragraphs []xmlPara `xml:"w:p"`
	SectPr     xmlSectPr `xml:"w:sectPr"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NsW     string   `xml:"xmlns:w,attr"`
	NsR     string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlHeaderPart struct {
	XMLName    xml.Name  `xml:"w:hdr"`
	NsW        string    `xml:"xmlns:w,attr"`
	NsR        string    `xml:"xmlns:r,attr"`
	Paragraphs []xmlPara `xml:"w:p"`
}

type xmlW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type xmlCoreProps struct {
	XMLName     xml.Name   `xml:"cp:coreProperties"`
	NsCP        string     `xml:"xmlns:cp,attr"`
	NsDC        string     `xml:"xmlns:dc,attr"`
	NsDCTerms   string     `xml:"xmlns:dcterms,attr"`
	NsXSI       string     `xml:"xmlns:xsi,attr"`
	Title       string     `xml:"dc:title,omitempty"`
	Subject     string     `xml:"dc:subject,omitempty"`
	Creator     string     `xml:"dc:creator,omitempty"`
	Description string     `xml:"dc:description,omitempty"`
	Created     *xmlW3CDTF `xml:"dcterms:created"`
	Modified    *xmlW3CDTF `xml:"dcterms:modified"`
}

func toXMLRun(r Run) xmlRun {
	props := &xmlRunProps{}
	used := false
	if r.Font != "" {
		props.Fonts = &xmlFonts{ASCII: r.Font, HAnsi: r.Font, CS: r.Font}
		used = true
	}
	if r.Bold {
		props.Bold = &struct{}{}
		used = true
	}
	if r.Color != "" {
		props.Color = &xmlValAttr{Val: r.Color}
		used = true
	}
	if r.SizePt > 0 {
		// w:sz is expressed in half-points.
		hp := fmt.Sprintf("%d", int(r.SizePt*2))
		props.Size = &xmlValAttr{Val: hp}
		props.SizeCS = &xmlValAttr{Val: hp}
		used = true
	}
	if r.Underline {
		props.Underline = &xmlValAttr{Val: "single"}
		used = true
	}
	out := xmlRun{Text: xmlText{Text: r.Text}}
	if strings.TrimSpace(r.Text) != r.Text {
		out.Text.Space = "preserve"
	}
	if used {
		out.Props = props
	}
	return out
}

func toXMLParagraph(p Paragraph) xmlPara {
	out := xmlPara{}
	if p.Alignment != "" && p.Alignment != AlignLeft {
		out.Props = &xmlParaProps{Justify: &xmlValAttr{Val: string(p.Alignment)}}
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, toXMLRun(r))
	}
	return out
}

func marshalPart(v any) ([]byte, error) {
	b, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}

func documentPart(d *Document) ([]byte, error) {
	doc := xmlDocument{
		NsW: nsMain,
		NsR: nsRels,
		Body: xmlBody{
			SectPr: xmlSectPr{
				// US Letter, 1 inch margins (1440 twips).
				PageSize: xmlPageSize{W: "12240", H: "15840"},
				Margins: xmlPageMargins{
					Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
					Header: "720", Footer: "720", Gutter: "0",
				},
			},
		},
	}
	if len(d.header) > 0 {
		doc.Body.SectPr.HeaderRef = &xmlHeaderRef{Type: "default", ID: "rId1"}
	}
	for _, p := range d.body {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, toXMLParagraph(p))
	}
	return marshalPart(doc)
}

func headerPart(d *Document) ([]byte, error) {
	hdr := xmlHeaderPart{NsW: nsMain, NsR: nsRels}
	for _, p := range d.header {
		hdr.Paragraphs = append(hdr.Paragraphs, toXMLParagraph(p))
	}
	return marshalPart(hdr)
}

func corePart(d *Document) ([]byte, error) {
	created := d.props.Created
	if created.IsZero() {
		created = time.Now()
	}
	stamp := &xmlW3CDTF{Type: "dcterms:W3CDTF", Value: created.UTC().Format(time.RFC3339)}
	core := xmlCoreProps{
		NsCP:        "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		NsDC:        "http://purl.org/dc/elements/1.1/",
		NsDCTerms:   "http://purl.org/dc/terms/",
		NsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:       d.props.Title,
		Subject:     d.props.Subject,
		Creator:     d.props.Creator,
		Description: d.props.Description,
		Created:     stamp,
		Modified:    stamp,
	}
	return marshalPart(core)
}

func writeArchive(w io.Writer, d *Document) error {
	docXML, err := documentPart(d)
	if err != nil {
		return fmt.Errorf("marshal document part: %w", err)
	}
	coreXML, err := corePart(d)
	if err != nil {
		return fmt.Errorf("marshal core properties: %w", err)
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"word/document.xml", docXML},
		{"docProps/core.xml", coreXML},
		{"docProps/app.xml", []byte(appPropsXML)},
	}
	if len(d.header) > 0 {
		hdrXML, err := headerPart(d)
		if err != nil {
			return fmt.Errorf("marshal header part: %w", err)
		}
		parts = append(parts,
			struct {
				name string
				data []byte
			}{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
			struct {
				name string
				data []byte
			}{"word/header1.xml", hdrXML},
		)
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}
