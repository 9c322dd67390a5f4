package extraction

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxTagRe      = regexp.MustCompile(`<[^>]+>`)
	docxSpaceRunRe = regexp.MustCompile(`[ \t]+`)
)

// extractDOCX decodes a DOCX container into raw paragraph text. Only paragraph
// content is kept; style and structural information is discarded.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", &ExtractionError{Format: "DOCX", Cause: fmt.Errorf("document has no body content")}
	}

	return paragraphText(content), nil
}

// paragraphText flattens WordprocessingML into one line per paragraph.
func paragraphText(content string) string {
	// Paragraph and tab boundaries become whitespace before tags are stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = docxTagRe.ReplaceAllString(content, "")

	content = unescapeXML(content)

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(docxSpaceRunRe.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// unescapeXML expands the five predefined XML entities left behind by tag stripping.
func unescapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
	return replacer.Replace(s)
}
