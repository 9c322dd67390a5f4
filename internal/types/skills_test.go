package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsMapPreservesDiscoveryOrder(t *testing.T) {
	// Category order must survive a round trip even when it is not alphabetical.
	input := `{"Web Development":["React"],"Languages":["Go","Python"],"AI/ML":["PyTorch"]}`

	var skills SkillsMap
	require.NoError(t, json.Unmarshal([]byte(input), &skills))
	assert.Equal(t, []string{"Web Development", "Languages", "AI/ML"}, skills.Categories())

	out, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestSkillsMapSetAndGet(t *testing.T) {
	skills := NewSkillsMap()
	skills.Set("Languages", []string{"Go"})
	skills.Set("Tools", nil)
	skills.Set("Languages", []string{"Go", "Rust"})

	assert.Equal(t, 2, skills.Len())
	assert.Equal(t, []string{"Languages", "Tools"}, skills.Categories())

	langs, ok := skills.Get("Languages")
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Rust"}, langs)

	tools, ok := skills.Get("Tools")
	require.True(t, ok)
	assert.Empty(t, tools)

	_, ok = skills.Get("Cloud")
	assert.False(t, ok)
}

func TestSkillsMapUnmarshalMalformedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"list instead of map", `["a","b"]`},
		{"string", `"skills"`},
		{"number", `42`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var skills SkillsMap
			require.NoError(t, json.Unmarshal([]byte(tt.input), &skills))
			assert.Equal(t, 0, skills.Len())

			out, err := json.Marshal(skills)
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(out))
		})
	}
}

func TestSkillsMapCoercesCategoryValues(t *testing.T) {
	var skills SkillsMap
	require.NoError(t, json.Unmarshal([]byte(`{"Languages":"Go","Tools":[1,"git"],"Cloud":{"aws":true}}`), &skills))

	langs, _ := skills.Get("Languages")
	assert.Equal(t, []string{"Go"}, langs, "bare string becomes one-element list")

	tools, _ := skills.Get("Tools")
	assert.Equal(t, []string{"git"}, tools, "non-string items are dropped")

	cloud, _ := skills.Get("Cloud")
	assert.Empty(t, cloud, "nested object becomes empty list")
}

func TestSkillsMapZeroValueMarshal(t *testing.T) {
	var skills SkillsMap
	out, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}
