package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"suffix", "suffix", 0},
		{"sufix", "suffix", 1},
		{"kitten", "sitting", 3},
		{"runtime-import", "runtime_import", 1},
		{"tag", "gat", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSuggest(t *testing.T) {
	keys := []string{"tag", "suffix", "comments"}

	assert.Equal(t, "tag", Suggest("tags", keys))
	assert.Equal(t, "comments", Suggest("coments", keys))
	assert.Equal(t, "", Suggest("completely_unrelated", keys))
	assert.Equal(t, "", Suggest("x", nil))
}
