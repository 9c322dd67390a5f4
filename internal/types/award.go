package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Award holds a project's award field, which arrives from extraction as either a
// single string or a list of strings. Both shapes are valid and must round-trip
// unchanged: a string stays a string, a list stays a list. Multiple is the
// discriminator; when false only Values[0] (or "" when empty) is meaningful.
type Award struct {
	Values   []string
	Multiple bool
}

// SingleAward wraps one award string in the single-string representation.
func SingleAward(s string) Award {
	return Award{Values: []string{s}}
}

// MultipleAwards wraps a list of award strings in the list representation.
func MultipleAwards(values ...string) Award {
	if values == nil {
		values = []string{}
	}
	return Award{Values: values, Multiple: true}
}

// IsZero reports whether the award is the empty single-string form.
func (a Award) IsZero() bool {
	return !a.Multiple && (len(a.Values) == 0 || a.Values[0] == "")
}

// String returns the single value, or the list values joined for display.
func (a Award) String() string {
	if len(a.Values) == 0 {
		return ""
	}
	if !a.Multiple {
		return a.Values[0]
	}
	return strings.Join(a.Values, ", ")
}

// MarshalJSON emits a bare string for the single form and a JSON array for the
// list form, preserving whichever representation was decoded.
func (a Award) MarshalJSON() ([]byte, error) {
	if a.Multiple {
		values := a.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	}
	if len(a.Values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.Values[0])
}

// UnmarshalJSON accepts a string, an array of strings, or null. Non-string array
// elements keep their literal text rather than failing; any other JSON shape
// collapses to the empty single form so award data never fails a parse.
func (a *Award) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = Award{Values: []string{}}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("award: %w", err)
		}
		if s == "" {
			*a = Award{Values: []string{}}
			return nil
		}
		*a = Award{Values: []string{s}}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("award: %w", err)
		}
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				s = string(bytes.TrimSpace(item))
			}
			values = append(values, s)
		}
		*a = Award{Values: values, Multiple: true}
		return nil
	default:
		*a = Award{Values: []string{}}
		return nil
	}
}
