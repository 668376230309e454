package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANSIToMarkup(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello"},
		{"escaped", "a < b & c", "a &lt; b &amp; c"},
		{"color", "\x1b[31mred\x1b[0m plain", `<span foreground="#800000">red</span> plain`},
		{"bold", "\x1b[1mbold\x1b[0m", `<span weight="bold">bold</span>`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ANSIToMarkup(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevel(t *testing.T) {
	for _, level := range []LogLevel{LevelDebug, LevelInfo, LevelWarning, LevelError} {
		parsed, err := ParseLogLevel(strings.ToUpper(level.String()))
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
	_, err := ParseLogLevel("trace")
	assert.Error(t, err)
	assert.Equal(t, "level(9)", LogLevel(9).String())
}

func TestGenerateLog(t *testing.T) {
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lines := GenerateLog(200, 1, end)
	require.Len(t, lines, 200)
	assert.Equal(t, lines, GenerateLog(200, 1, end))

	for i := 1; i < len(lines); i++ {
		assert.False(t, lines[i].Time.Before(lines[i-1].Time))
	}

	warnings := NewLogSource(lines, LevelWarning)
	assert.Less(t, warnings.Count(), len(lines))
	for i := 0; i < warnings.Count(); i++ {
		entry := warnings.ItemData(i).(LogEntry)
		assert.GreaterOrEqual(t, entry.Level, LevelWarning)
		assert.NotContains(t, entry.Markup, "\x1b")
		assert.Contains(t, entry.Markup, "<span")
	}
}

func TestLogSourceAppend(t *testing.T) {
	s := NewLogSource(nil, LevelWarning)
	n := s.Append(
		LogLine{Level: LevelInfo, Raw: "skipped"},
		LogLine{Level: LevelError, Raw: "\x1b[1;31mERROR\x1b[0m kept"},
	)
	assert.Equal(t, 1, n)
	require.Equal(t, 1, s.Count())

	entry := s.ItemData(0).(LogEntry)
	assert.Equal(t, "ERROR kept", entry.Text())
	assert.Equal(t, LevelWarning, s.MinLevel())
}
