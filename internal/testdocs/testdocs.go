// Package testdocs builds minimal PDF and DOCX fixtures for pipeline tests.
// The containers are small but well-formed; nothing here is used outside tests.
package testdocs

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// MakeDocx builds a minimal DOCX container with one w:p per paragraph.
func MakeDocx(paragraphs ...string) []byte {
	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/></Types>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypes},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", rels},
	} {
		f, err := zw.Create(entry.name)
		if err != nil {
			panic(err)
		}
		if _, err := f.Write([]byte(entry.content)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// MakePDF builds a minimal single-font PDF with one content stream per page.
// Each line of a page is shown at its own vertical position so it lands in its
// own text row.
func MakePDF(pages ...[]string) []byte {
	if len(pages) == 0 {
		panic("MakePDF requires at least one page")
	}

	// Object numbering: 1 catalog, 2 pages, 3 font, then for each page i:
	// page object 4+2i, content stream 5+2i.
	var kids bytes.Buffer
	for i := range pages {
		fmt.Fprintf(&kids, "%d 0 R ", 4+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i, lines := range pages {
		var stream bytes.Buffer
		stream.WriteString("BT\n/F1 12 Tf\n")
		y := 720
		for _, line := range lines {
			fmt.Fprintf(&stream, "1 0 0 1 72 %d Tm (%s) Tj\n", y, line)
			y -= 20
		}
		stream.WriteString("ET")

		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", stream.Len(), stream.String()),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}
