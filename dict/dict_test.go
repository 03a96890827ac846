package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DuplicateCategory(t *testing.T) {
	_, err := New(
		Category{Name: "pos", Entries: []string{"good"}},
		Category{Name: "pos", Entries: []string{"great"}},
	)
	assert.Error(t, err)
}

func TestDictionary_Accessors(t *testing.T) {
	d, err := New(
		Category{Name: "pos", Entries: []string{"good", "great"}},
		Category{Name: "neg", Entries: []string{"bad"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"pos", "neg"}, d.Categories())
	assert.Equal(t, []string{"good", "great"}, d.Entries("pos"))
	assert.Nil(t, d.Entries("missing"))
}

func TestDictionary_Flatten(t *testing.T) {
	d, err := New(
		Category{Name: "cities", Entries: []string{"New York", "Boston"}},
		Category{Name: "states", Entries: []string{"New  Mexico"}},
	)
	require.NoError(t, err)

	t.Run("joins tokens with concatenator", func(t *testing.T) {
		assert.Equal(t, []string{"New_York", "Boston", "New_Mexico"}, d.Flatten("_"))
	})

	t.Run("custom concatenator", func(t *testing.T) {
		assert.Equal(t, []string{"New+York", "Boston", "New+Mexico"}, d.Flatten("+"))
	})
}

func TestLoadYAML(t *testing.T) {
	input := `
positive:
  - good
  - well done
negative:
  - bad
single: alone
`
	d, err := LoadYAML(strings.NewReader(input))
	require.NoError(t, err)

	// File order is preserved.
	assert.Equal(t, []string{"positive", "negative", "single"}, d.Categories())
	assert.Equal(t, []string{"good", "well done"}, d.Entries("positive"))
	assert.Equal(t, []string{"alone"}, d.Entries("single"))
	assert.Equal(t, []string{"good", "well_done", "bad", "alone"}, d.Flatten("_"))
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"nested mapping entry", "cat:\n  sub:\n    - x\n"},
		{"invalid yaml", "cat: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
