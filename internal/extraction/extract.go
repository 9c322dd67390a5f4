// Package extraction turns raw PDF and DOCX bytes into plain resume text.
// It dispatches on a declared type token, decodes the matching container format,
// and guards against documents that yield too little text to parse.
package extraction

import "strings"

// MinTextLength is the minimum trimmed length of extracted text. Anything
// shorter fails fast instead of spending a model call on a doomed extraction.
const MinTextLength = 50

// ExtractText decodes document bytes into plain text based on the declared type.
// The type token is matched case-insensitively and by substring, since callers
// hand over file extensions ("pdf", ".docx"), MIME types ("application/pdf"),
// or bare format names ("Word") interchangeably.
func ExtractText(data []byte, declaredType string) (string, error) {
	token := strings.ToLower(strings.TrimSpace(declaredType))

	var (
		text string
		err  error
	)
	switch {
	case strings.Contains(token, "pdf"):
		text, err = extractPDF(data)
	case strings.Contains(token, "docx"), strings.Contains(token, "doc"), strings.Contains(token, "word"):
		text, err = extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Format: declaredType}
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if len(strings.TrimSpace(text)) < MinTextLength {
		return "", &InsufficientTextError{Length: len(strings.TrimSpace(text))}
	}
	return text, nil
}
