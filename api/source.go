package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/google/uuid"
)

// itemNamespace scopes the ids of generated items.
var itemNamespace = uuid.MustParse("6f1c2a5e-8a4b-4d2c-9a57-3d1c0e7b9f10")

// Item is a generated gallery entry. Body lengths vary a lot so wrapped items have very
// different heights.
type Item struct {
	ID    uuid.UUID
	Index int
	Title string
	Body  string
}

func (i Item) SearchText() string {
	return i.Title + " " + i.Body
}

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud
exercitation ullamco laboris nisi aliquip ex ea commodo consequat duis aute irure in
reprehenderit voluptate velit esse cillum fugiat nulla pariatur excepteur sint occaecat
cupidatat non proident sunt culpa qui officia deserunt mollit anim id est laborum`)

// GenerateItem builds item i. The result only depends on i.
func GenerateItem(i int) Item {
	n := 3 + (i*7919)%60
	if i%97 == 0 {
		n += 120
	}
	body := make([]string, n)
	for w := range body {
		body[w] = words[(i*31+w*17)%len(words)]
	}
	return Item{
		ID:    uuid.NewSHA1(itemNamespace, []byte(strconv.Itoa(i))),
		Index: i,
		Title: fmt.Sprintf("Item %d", i),
		Body:  strings.Join(body, " "),
	}
}

// GeneratedSource serves n generated items without storing them.
type GeneratedSource struct {
	n int
}

func NewGeneratedSource(n int) *GeneratedSource {
	return &GeneratedSource{n: max(n, 0)}
}

func (s *GeneratedSource) Count() int {
	return s.n
}

func (s *GeneratedSource) ItemData(index int) any {
	return GenerateItem(index)
}

// Searchable is implemented by item payloads a FilterSource can match.
type Searchable interface {
	SearchText() string
}

// similarityThreshold is the lowest Levenshtein similarity at which a word counts as a
// misspelling of a search term.
const similarityThreshold = 0.75

// FilterSource is a view of the items of another source that match a query.
type FilterSource struct {
	source  virtuallist.DataSource
	query   string
	indices []int
}

// NewFilterSource matches every item of source against query. Items that are not
// Searchable never match a non-empty query.
func NewFilterSource(source virtuallist.DataSource, query string) *FilterSource {
	f := FilterSource{source: source, query: query}
	terms := strings.Fields(strings.ToLower(query))
	for i := 0; i < source.Count(); i++ {
		if len(terms) == 0 {
			f.indices = append(f.indices, i)
			continue
		}
		item, ok := source.ItemData(i).(Searchable)
		if ok && Match(item.SearchText(), terms) {
			f.indices = append(f.indices, i)
		}
	}
	return &f
}

func (f *FilterSource) Count() int {
	return len(f.indices)
}

func (f *FilterSource) ItemData(index int) any {
	return f.source.ItemData(f.indices[index])
}

// SourceIndex maps an index of the filtered view to the index in the wrapped source.
func (f *FilterSource) SourceIndex(index int) int {
	return f.indices[index]
}

func (f *FilterSource) Query() string {
	return f.query
}

// Match reports whether every lower case term occurs in text, either as a substring or as a
// close spelling of one of its words.
func Match(text string, terms []string) bool {
	text = strings.ToLower(text)
	fields := strings.Fields(text)
	levenshtein := metrics.NewLevenshtein()

terms:
	for _, term := range terms {
		if strings.Contains(text, term) {
			continue
		}
		if len(term) < 3 {
			return false
		}
		for _, word := range fields {
			if strutil.Similarity(word, term, levenshtein) >= similarityThreshold {
				continue terms
			}
		}
		return false
	}
	return true
}
