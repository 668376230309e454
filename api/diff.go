package api

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// DiffHunk is one hunk of a unified diff.
type DiffHunk struct {
	FromLine int
	ToLine   int
	Added    int
	Removed  int
	Lines    []gotextdiff.Line
	// Text is the hunk in unified format, starting with its @@ header.
	Text string
}

// Title is the @@ header line of the hunk.
func (h DiffHunk) Title() string {
	title, _, _ := strings.Cut(h.Text, "\n")
	return title
}

func (h DiffHunk) SearchText() string {
	return h.Text
}

// DiffSource serves the hunks of the diff between two texts.
type DiffSource struct {
	name  string
	hunks []DiffHunk
}

func NewDiffSource(name, before, after string) *DiffSource {
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	unified := gotextdiff.ToUnified(name, name, before, edits)

	s := DiffSource{name: name}
	for _, h := range unified.Hunks {
		hunk := DiffHunk{FromLine: h.FromLine, ToLine: h.ToLine, Lines: h.Lines}
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				hunk.Added++
			case gotextdiff.Delete:
				hunk.Removed++
			}
		}
		text := fmt.Sprint(gotextdiff.Unified{From: name, To: name, Hunks: []*gotextdiff.Hunk{h}})
		hunk.Text = strings.TrimPrefix(text, fmt.Sprintf("--- %s\n+++ %s\n", name, name))
		s.hunks = append(s.hunks, hunk)
	}
	return &s
}

func (s *DiffSource) Name() string {
	return s.name
}

func (s *DiffSource) Count() int {
	return len(s.hunks)
}

func (s *DiffSource) ItemData(index int) any {
	return s.hunks[index]
}

// Stat sums up added and removed lines over all hunks.
func (s *DiffSource) Stat() (added, removed int) {
	for _, h := range s.hunks {
		added += h.Added
		removed += h.Removed
	}
	return added, removed
}

// GenerateRevision returns a document of n lines and an edited copy of it. Edits are
// spread over the whole document so the diff has many hunks of different sizes.
func GenerateRevision(n int, seed int64) (before, after string) {
	r := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for i := range lines {
		body := GenerateItem(i).Body
		lines[i] = body[:min(len(body), 40+i%40)] + "\n"
	}
	before = strings.Join(lines, "")

	var edited []string
	for i := 0; i < len(lines); i++ {
		switch r.Intn(40) {
		case 0:
			// drop a run of lines
			i += r.Intn(4)
		case 1:
			for j := r.Intn(6); j >= 0; j-- {
				edited = append(edited, fmt.Sprintf("inserted line %d.%d\n", i, j))
			}
			edited = append(edited, lines[i])
		case 2:
			edited = append(edited, strings.ToUpper(lines[i]))
		default:
			edited = append(edited, lines[i])
		}
	}
	return before, strings.Join(edited, "")
}
