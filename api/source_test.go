package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItem(t *testing.T) {
	a, b := GenerateItem(12), GenerateItem(12)
	assert.Equal(t, a, b)
	assert.Equal(t, "Item 12", a.Title)
	assert.NotEqual(t, a.ID, GenerateItem(13).ID)
	assert.Greater(t, len(GenerateItem(97).Body), len(GenerateItem(98).Body), "every 97th item is long")
}

func TestGeneratedSource(t *testing.T) {
	s := NewGeneratedSource(10)
	assert.Equal(t, 10, s.Count())
	assert.Equal(t, GenerateItem(3), s.ItemData(3))
	assert.Zero(t, NewGeneratedSource(-1).Count())
}

func TestFilterSource(t *testing.T) {
	source := NewGeneratedSource(10)

	all := NewFilterSource(source, "  ")
	assert.Equal(t, 10, all.Count())

	f := NewFilterSource(source, "Item 7")
	require.Equal(t, 1, f.Count())
	assert.Equal(t, 7, f.SourceIndex(0))
	assert.Equal(t, GenerateItem(7), f.ItemData(0))
	assert.Equal(t, "Item 7", f.Query())

	assert.Zero(t, NewFilterSource(source, "nothing-like-this").Count())
}

func TestFilterSourceSkipsUnsearchable(t *testing.T) {
	source := intSource{1, 2, 3}
	assert.Zero(t, NewFilterSource(source, "1").Count())
	assert.Equal(t, 3, NewFilterSource(source, "").Count())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		text  string
		terms []string
		want  bool
	}{
		{"Lorem ipsum", []string{"lorem"}, true},
		{"lorem ipsum", []string{"lorum"}, true},
		{"lorem ipsum", []string{"lorum", "ipsom"}, true},
		{"lorem ipsum", []string{"lorum", "xyz"}, false},
		{"abc", []string{"ab"}, true},
		{"abc", []string{"zz"}, false},
		{"anything", nil, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.text, tt.terms), "%q %v", tt.text, tt.terms)
	}
}

type intSource []int

func (s intSource) Count() int { return len(s) }
func (s intSource) ItemData(index int) any { return s[index] }
