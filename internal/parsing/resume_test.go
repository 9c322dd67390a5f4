package parsing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient implements llm.Client without network access.
type stubClient struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubClient) GenerateJSON(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func TestRequestExtraction(t *testing.T) {
	stub := &stubClient{response: `{"header":{}}`}

	raw, err := RequestExtraction(context.Background(), stub, "resume text here")
	require.NoError(t, err)
	assert.Equal(t, `{"header":{}}`, raw)
	assert.Equal(t, 1, stub.calls)

	// The system instruction pins the output contract.
	assert.Contains(t, stub.lastSystem, `"header"`)
	assert.Contains(t, stub.lastSystem, `"education"`)
	assert.Contains(t, stub.lastSystem, `"experience"`)
	assert.Contains(t, stub.lastSystem, `"projects"`)
	assert.Contains(t, stub.lastSystem, "MM/YYYY")
	assert.Contains(t, stub.lastSystem, "Present")
	assert.Contains(t, stub.lastSystem, "Internship")
	assert.Contains(t, stub.lastSystem, "Do not invent information")

	// The user turn carries the literal extracted text.
	assert.Contains(t, stub.lastUser, "resume text here")
	assert.NotContains(t, stub.lastUser, "{{.ResumeText}}")
}

func TestRequestExtractionModelFailure(t *testing.T) {
	transportErr := errors.New("quota exceeded")
	stub := &stubClient{err: transportErr}

	_, err := RequestExtraction(context.Background(), stub, "resume text")
	require.Error(t, err)

	var modelErr *ModelCallError
	require.ErrorAs(t, err, &modelErr)
	assert.ErrorIs(t, err, transportErr)
}

func TestInterpretStrictJSON(t *testing.T) {
	doc, err := Interpret(`  {"header":{"name":"A"}}  `)
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":{"name":"A"}}`, string(doc))
}

func TestInterpretCodeFence(t *testing.T) {
	raw := "Here is the JSON:\n```json\n{\"header\":{}}\n```"

	doc, err := Interpret(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":{}}`, string(doc))
}

func TestInterpretProseWrappedJSON(t *testing.T) {
	raw := `Sure! The parsed resume is {"header":{"name":"A"},"projects":[]} and that is everything I found.`

	doc, err := Interpret(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":{"name":"A"},"projects":[]}`, string(doc))
}

func TestInterpretNoJSON(t *testing.T) {
	_, err := Interpret("I could not find any resume content in the provided text.")
	require.Error(t, err)

	var unparseableErr *UnparseableResponseError
	require.ErrorAs(t, err, &unparseableErr)
	assert.NotEmpty(t, unparseableErr.Excerpt)
}

func TestInterpretInvalidBraceSubstring(t *testing.T) {
	_, err := Interpret(`prefix {"header": oops} suffix`)
	require.Error(t, err)

	var unparseableErr *UnparseableResponseError
	require.ErrorAs(t, err, &unparseableErr)
	assert.Error(t, unparseableErr.Cause)
}

func TestInterpretExcerptIsBounded(t *testing.T) {
	raw := strings.Repeat("no json here ", 100)

	_, err := Interpret(raw)
	require.Error(t, err)

	var unparseableErr *UnparseableResponseError
	require.ErrorAs(t, err, &unparseableErr)
	assert.LessOrEqual(t, len(unparseableErr.Excerpt), maxExcerptLength+len("..."))
}
