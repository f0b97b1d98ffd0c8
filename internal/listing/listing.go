// Package listing implements the non-interactive "list" and "categories"
// commands. It drives the same browse session as the TUI and prints the
// resulting view models as text or JSON.
package listing

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lamchakchan/devtools-pro/internal/browse"
	"github.com/lamchakchan/devtools-pro/internal/catalog"
	"github.com/lamchakchan/devtools-pro/internal/favorites"
	"github.com/lamchakchan/devtools-pro/internal/labels"
	"github.com/lamchakchan/devtools-pro/internal/platform"
	"github.com/lamchakchan/devtools-pro/internal/query"
)

// Options selects what the list command shows.
type Options struct {
	Search    string
	Category  string
	Sort      string
	Favorites []int
	JSON      bool
}

// State converts the options into a query state.
func (o Options) State() query.State {
	return query.DefaultState().
		WithSearch(o.Search).
		WithCategory(o.Category).
		WithSort(query.SortKey(o.Sort))
}

// listResult is the JSON shape of the list command.
type listResult struct {
	Search   string            `json:"search"`
	Category string            `json:"category"`
	Sort     query.SortKey     `json:"sort"`
	Count    int               `json:"count"`
	Tools    []browse.ToolView `json:"tools"`
}

// Run prints the tools matching opts to w.
func Run(w io.Writer, c *catalog.Catalog, opts Options, logger *zap.Logger) error {
	s := browse.New(c, logger,
		browse.WithState(opts.State()),
		browse.WithFavorites(favorites.New(opts.Favorites...)),
	)
	views := s.Views()
	st := s.State()

	if opts.JSON {
		return platform.WriteJSON(w, listResult{
			Search:   st.Search,
			Category: st.Category,
			Sort:     st.Sort,
			Count:    len(views),
			Tools:    views,
		})
	}

	platform.PrintBanner(w, labels.Title)
	platform.PrintSubtitle(w, labels.Subtitle)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n\n", describeState(c, st))

	if len(views) == 0 {
		platform.PrintWarningLine(w, labels.EmptyTitle)
		platform.PrintSubtitle(w, labels.EmptyHint)
		return nil
	}

	for _, v := range views {
		writeTool(w, v)
	}
	platform.PrintInfo(w, fmt.Sprintf("%d outil(s)", len(views)))
	return nil
}

func describeState(c *catalog.Catalog, st query.State) string {
	parts := []string{
		fmt.Sprintf("%s %s", labels.CategoryPrompt, c.CategoryLabel(st.Category).Name),
		fmt.Sprintf("%s %s", labels.SortLabel, st.Sort.Label()),
	}
	if st.Search != "" {
		parts = append(parts, fmt.Sprintf("Recherche : %q", st.Search))
	}
	return strings.Join(parts, "   ")
}

func writeTool(w io.Writer, v browse.ToolView) {
	heart := platform.Gray("♡")
	if v.Favorite {
		heart = platform.Red("♥")
	}

	header := fmt.Sprintf("%s %s  %s  %s %s  ⬇ %s",
		heart,
		platform.Bold(v.Name),
		platform.Token(v.CategoryColor, "["+v.CategoryLabel+"]"),
		platform.Yellow("★"),
		labels.FormatRating(v.Rating),
		v.Downloads,
	)
	if v.IsNew {
		header += "  " + platform.BoldBlue(labels.NewBadge)
	}
	fmt.Fprintf(w, "  %s\n", header)

	for _, line := range labels.Wrap(v.Description, 72) {
		fmt.Fprintf(w, "      %s\n", line)
	}
	if len(v.Features) > 0 {
		fmt.Fprintf(w, "      %s\n", platform.Gray(strings.Join(v.Features, " · ")))
	}
	fmt.Fprintf(w, "      %s → %s\n\n", labels.VisitLabel, v.DownloadLink)
}

// categoryRow is the JSON shape of one category.
type categoryRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Tools int    `json:"tools"`
}

// Categories prints the filter choices with the number of tools in each.
func Categories(w io.Writer, c *catalog.Catalog, asJSON bool) error {
	counts := make(map[string]int)
	for _, t := range c.Tools() {
		counts[t.Category]++
	}

	rows := make([]categoryRow, 0, len(c.Categories())+1)
	for _, cat := range c.FilterChoices() {
		n := counts[cat.ID]
		if cat.ID == catalog.AllCategoryID {
			n = c.Len()
		}
		rows = append(rows, categoryRow{ID: cat.ID, Name: cat.Name, Color: cat.Color, Tools: n})
	}

	if asJSON {
		return platform.WriteJSON(w, rows)
	}

	platform.PrintBanner(w, "Catégories")
	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-12s %s %s\n", r.ID, platform.Token(r.Color, r.Name), platform.Gray(fmt.Sprintf("(%d)", r.Tools)))
	}
	fmt.Fprintln(w)
	return nil
}
