package api

import (
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffSource(t *testing.T) {
	s := NewDiffSource("doc.txt", "a\nb\nc\n", "a\nB\nc\n")
	require.Equal(t, 1, s.Count())

	hunk := s.ItemData(0).(DiffHunk)
	assert.Equal(t, "@@ -1,3 +1,3 @@", hunk.Title())
	assert.Equal(t, "@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n", hunk.Text)
	assert.Equal(t, 1, hunk.Added)
	assert.Equal(t, 1, hunk.Removed)
	assert.Equal(t, gotextdiff.Equal, hunk.Lines[0].Kind)

	added, removed := s.Stat()
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestDiffSourceUnchanged(t *testing.T) {
	s := NewDiffSource("doc.txt", "same\n", "same\n")
	assert.Zero(t, s.Count())
}

func TestGenerateRevision(t *testing.T) {
	before, after := GenerateRevision(500, 3)
	again, _ := GenerateRevision(500, 3)
	assert.Equal(t, before, again)
	assert.NotEqual(t, before, after)

	s := NewDiffSource("generated", before, after)
	assert.Greater(t, s.Count(), 5)
	added, removed := s.Stat()
	assert.Positive(t, added+removed)
}
