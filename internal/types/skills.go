package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillsMap maps free-text skill category names to ordered lists of skills.
// Iteration and JSON marshaling follow category-discovery order, not
// alphabetical order, so the map round-trips the way extraction produced it.
type SkillsMap struct {
	categories []string
	items      map[string][]string
}

// NewSkillsMap returns an empty skills map.
func NewSkillsMap() SkillsMap {
	return SkillsMap{items: make(map[string][]string)}
}

// Set adds or replaces a category. New categories append to the discovery order.
func (m *SkillsMap) Set(category string, skills []string) {
	if m.items == nil {
		m.items = make(map[string][]string)
	}
	if _, exists := m.items[category]; !exists {
		m.categories = append(m.categories, category)
	}
	if skills == nil {
		skills = []string{}
	}
	m.items[category] = skills
}

// Get returns the skills for a category and whether the category exists.
func (m SkillsMap) Get(category string) ([]string, bool) {
	skills, ok := m.items[category]
	return skills, ok
}

// Categories returns the category names in discovery order.
func (m SkillsMap) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// Len returns the number of categories.
func (m SkillsMap) Len() int {
	return len(m.categories)
}

// MarshalJSON emits a JSON object with keys in discovery order. encoding/json
// sorts plain map keys, which would destroy the ordering, so the object is
// written by hand.
func (m SkillsMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range m.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		skills := m.items[category]
		if skills == nil {
			skills = []string{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object token by token so key order is observed.
// Anything other than an object (list, scalar, null) decodes to an empty map;
// shape repair is the normalizer's contract, not a decode failure.
func (m *SkillsMap) UnmarshalJSON(data []byte) error {
	*m = NewSkillsMap()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // opening brace
		return fmt.Errorf("skills: %w", err)
	}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("skills: unexpected key token %v", keyToken)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		m.Set(key, decodeSkillList(raw))
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return fmt.Errorf("skills: %w", err)
	}
	return nil
}

// decodeSkillList coerces a category value into a string list. A bare string
// becomes a one-element list; non-string items are dropped; anything else
// becomes the empty list.
func decodeSkillList(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return list
	}

	var loose []any
	if err := json.Unmarshal(raw, &loose); err == nil {
		out := make([]string, 0, len(loose))
		for _, item := range loose {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{}
}
