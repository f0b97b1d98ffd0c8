// Package query narrows and orders the catalog for display. Everything here
// is a pure function of its inputs: the catalog is never reordered in place.
package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lamchakchan/devtools-pro/internal/catalog"
)

// SortKey selects the ordering strategy.
type SortKey string

const (
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
	SortDownloads SortKey = "downloads"
)

// SortOption pairs a sort key with its menu label.
type SortOption struct {
	Key   SortKey
	Label string
}

// SortOptions returns the sort choices in menu order.
func SortOptions() []SortOption {
	return []SortOption{
		{Key: SortName, Label: "Nom"},
		{Key: SortRating, Label: "Note"},
		{Key: SortDownloads, Label: "Popularité"},
	}
}

// ParseSortKey maps s to a known key. Anything unrecognized sorts by name.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortName, SortRating, SortDownloads:
		return k
	}
	return SortName
}

// Label returns the menu label for k.
func (k SortKey) Label() string {
	for _, o := range SortOptions() {
		if o.Key == ParseSortKey(string(k)) {
			return o.Label
		}
	}
	return ""
}

// State is the user's query: search text, category filter and sort key.
// It is a comparable value; transitions return a modified copy.
type State struct {
	Search   string
	Category string
	Sort     SortKey
}

// DefaultState is the state a new session starts with.
func DefaultState() State {
	return State{Category: catalog.AllCategoryID, Sort: SortName}
}

// WithSearch returns a copy of s with the search term replaced.
func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

// WithCategory returns a copy of s filtered to id. An empty id means "all".
func (s State) WithCategory(id string) State {
	if id == "" {
		id = catalog.AllCategoryID
	}
	s.Category = id
	return s
}

// WithSort returns a copy of s using key, normalized with ParseSortKey.
func (s State) WithSort(key SortKey) State {
	s.Sort = ParseSortKey(string(key))
	return s
}

// Matches reports whether t passes both the text and the category filter.
// Only name and description are searched; features are not.
func Matches(t catalog.Tool, search, category string) bool {
	return matchesText(t, strings.ToLower(search)) && matchesCategory(t, category)
}

func matchesText(t catalog.Tool, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

func matchesCategory(t catalog.Tool, category string) bool {
	return category == "" || category == catalog.AllCategoryID || t.Category == category
}

// FilterAndSort returns the tools that match st, ordered by st.Sort. The
// result is a new slice (empty, never nil, when nothing matches) and the
// input keeps its order.
func FilterAndSort(tools []catalog.Tool, st State) []catalog.Tool {
	needle := strings.ToLower(st.Search)
	out := make([]catalog.Tool, 0, len(tools))
	for _, t := range tools {
		if matchesText(t, needle) && matchesCategory(t, st.Category) {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, comparator(ParseSortKey(string(st.Sort))))
	return out
}

// comparator returns the ordering for key. Ties keep catalog order because
// callers sort stably.
//
// Downloads labels ("2.3k", "12k") are compared as text, not as magnitudes,
// so "9k" sorts above "12k".
func comparator(key SortKey) func(a, b catalog.Tool) int {
	col := collate.New(language.Und)
	switch key {
	case SortRating:
		return func(a, b catalog.Tool) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortDownloads:
		return func(a, b catalog.Tool) int { return col.CompareString(b.Downloads, a.Downloads) }
	default:
		return func(a, b catalog.Tool) int { return col.CompareString(a.Name, b.Name) }
	}
}
