package extraction

import "fmt"

// UnsupportedFormatError indicates the declared file type matched no known extractor.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %q (only PDF and DOCX files are supported)", e.Format)
}

// ExtractionError indicates the binary container could not be decoded.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.Format)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// InsufficientTextError indicates the decoded text is too short to be worth
// sending to the extraction model.
type InsufficientTextError struct {
	Length int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("could not extract sufficient text from the resume file (%d chars, minimum %d)", e.Length, MinTextLength)
}
