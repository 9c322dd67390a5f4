package extraction

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF decodes a PDF container into plain text. Each page yields a
// sequence of positioned text rows; rows are joined with single spaces within a
// page and pages with newlines, strictly in container order. No layout reflow
// or column detection.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed containers instead of
	// returning an error; a corrupt upload must surface as ExtractionError.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: "PDF", Cause: fmt.Errorf("malformed container: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Cause: err}
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			return "", &ExtractionError{Format: "PDF", Cause: rowErr}
		}

		runs := make([]string, 0, len(rows))
		for _, row := range rows {
			var sb strings.Builder
			for _, glyph := range row.Content {
				sb.WriteString(glyph.S)
			}
			run := strings.TrimSpace(sb.String())
			if run == "" {
				continue
			}
			runs = append(runs, decodeRunText(run))
		}
		if len(runs) > 0 {
			pages = append(pages, strings.Join(runs, " "))
		}
	}

	return strings.Join(pages, "\n"), nil
}

// decodeRunText percent-decodes a text run. Source documents frequently carry
// special characters as URI-escaped sequences at the container level. Decoding
// is best-effort: a run that is not valid percent-encoding is kept as-is.
func decodeRunText(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
