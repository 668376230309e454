package api

import (
	"fmt"
	"html"
	"math/rand"
	"strings"
	"time"

	ansi "github.com/leaanthony/go-ansi-parser"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

var levelNames = []string{"debug", "info", "warning", "error"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

func ParseLogLevel(s string) (LogLevel, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

func (l *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	level, err := ParseLogLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// LogLine is one line of terminal output, possibly containing ANSI SGR sequences.
type LogLine struct {
	Time  time.Time
	Level LogLevel
	Raw   string
}

// Text is the line without escape sequences.
func (l LogLine) Text() string {
	text, err := ansi.Cleanse(l.Raw, ansi.WithIgnoreInvalidCodes())
	if err != nil {
		return l.Raw
	}
	return text
}

// LogEntry is what a log panel renders.
type LogEntry struct {
	LogLine
	Markup string
}

// LogSource serves log lines at or above a minimum level. It only grows at the end, so
// indices handed out earlier stay valid.
type LogSource struct {
	min   LogLevel
	lines []LogLine
}

func NewLogSource(lines []LogLine, min LogLevel) *LogSource {
	s := LogSource{min: min}
	s.Append(lines...)
	return &s
}

// Append adds the lines that pass the level filter and returns how many did.
func (s *LogSource) Append(lines ...LogLine) int {
	n := len(s.lines)
	for _, line := range lines {
		if line.Level >= s.min {
			s.lines = append(s.lines, line)
		}
	}
	return len(s.lines) - n
}

func (s *LogSource) MinLevel() LogLevel {
	return s.min
}

func (s *LogSource) Count() int {
	return len(s.lines)
}

func (s *LogSource) ItemData(index int) any {
	line := s.lines[index]
	markup, err := ANSIToMarkup(line.Raw)
	if err != nil {
		markup = html.EscapeString(line.Raw)
	}
	return LogEntry{LogLine: line, Markup: markup}
}

// ANSIToMarkup converts SGR colored text to Pango markup.
func ANSIToMarkup(s string) (string, error) {
	texts, err := ansi.Parse(s, ansi.WithIgnoreInvalidCodes())
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, text := range texts {
		if text.Label == "" {
			continue
		}
		var attrs []string
		if text.FgCol != nil {
			attrs = append(attrs, fmt.Sprintf(`foreground="%s"`, text.FgCol.Hex))
		}
		if text.BgCol != nil {
			attrs = append(attrs, fmt.Sprintf(`background="%s"`, text.BgCol.Hex))
		}
		if text.Bold() {
			attrs = append(attrs, `weight="bold"`)
		}
		if text.Faint() {
			attrs = append(attrs, `alpha="60%"`)
		}
		if text.Italic() {
			attrs = append(attrs, `style="italic"`)
		}
		if text.Underlined() {
			attrs = append(attrs, `underline="single"`)
		}
		if text.Strikethrough() {
			attrs = append(attrs, `strikethrough="true"`)
		}

		label := html.EscapeString(text.Label)
		if len(attrs) == 0 {
			b.WriteString(label)
			continue
		}
		fmt.Fprintf(&b, "<span %s>%s</span>", strings.Join(attrs, " "), label)
	}
	return b.String(), nil
}

var (
	logComponents = []string{"scheduler", "cache", "http", "worker", "store"}
	logMessages   = []string{
		"request served",
		"cache entry evicted after exceeding its capacity limit",
		"retrying connection",
		"configuration reloaded from disk, %d keys changed",
		"slow operation detected, the handler took longer than the configured deadline and will be reported",
		"shutting down idle worker",
	}
	levelColors = map[LogLevel]string{
		LevelDebug:   "\x1b[2m",
		LevelInfo:    "\x1b[32m",
		LevelWarning: "\x1b[1;33m",
		LevelError:   "\x1b[1;31m",
	}
)

// GenerateLog produces n reproducible, colored log lines ending at end.
func GenerateLog(n int, seed int64, end time.Time) []LogLine {
	r := rand.New(rand.NewSource(seed))
	lines := make([]LogLine, n)
	t := end.Add(-time.Duration(n) * time.Second)
	for i := range lines {
		t = t.Add(time.Duration(r.Intn(2000)) * time.Millisecond)
		level := LogLevel(r.Intn(10) / 3)
		msg := logMessages[r.Intn(len(logMessages))]
		if strings.Contains(msg, "%d") {
			msg = fmt.Sprintf(msg, r.Intn(50))
		}
		lines[i] = LogLine{
			Time:  t,
			Level: level,
			Raw: fmt.Sprintf("%s%-7s\x1b[0m \x1b[36m%s\x1b[0m %s",
				levelColors[level], strings.ToUpper(level.String()), logComponents[r.Intn(len(logComponents))], msg),
		}
	}
	return lines
}
