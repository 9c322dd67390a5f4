package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Single string stays string", `"First Place"`, `"First Place"`},
		{"List stays list", `["First Place","Best Design"]`, `["First Place","Best Design"]`},
		{"Empty list stays list", `[]`, `[]`},
		{"Empty string stays string", `""`, `""`},
		{"Null becomes empty string", `null`, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var award Award
			require.NoError(t, json.Unmarshal([]byte(tt.input), &award))

			out, err := json.Marshal(award)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestAwardUnmarshal(t *testing.T) {
	t.Run("single form", func(t *testing.T) {
		var award Award
		require.NoError(t, json.Unmarshal([]byte(`"Winner"`), &award))
		assert.False(t, award.Multiple)
		assert.Equal(t, []string{"Winner"}, award.Values)
		assert.Equal(t, "Winner", award.String())
	})

	t.Run("list form", func(t *testing.T) {
		var award Award
		require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &award))
		assert.True(t, award.Multiple)
		assert.Equal(t, []string{"a", "b"}, award.Values)
		assert.Equal(t, "a, b", award.String())
	})

	t.Run("non-string list items keep literal text", func(t *testing.T) {
		var award Award
		require.NoError(t, json.Unmarshal([]byte(`["a", 2]`), &award))
		assert.Equal(t, []string{"a", "2"}, award.Values)
	})

	t.Run("object collapses to empty single form", func(t *testing.T) {
		var award Award
		require.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &award))
		assert.True(t, award.IsZero())
	})
}

func TestAwardConstructors(t *testing.T) {
	assert.False(t, SingleAward("x").Multiple)
	assert.True(t, MultipleAwards("x", "y").Multiple)
	assert.True(t, SingleAward("").IsZero())
	assert.False(t, MultipleAwards().IsZero())
}
