package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/devtools-pro/internal/browse"
	"github.com/lamchakchan/devtools-pro/internal/catalog"
	"github.com/lamchakchan/devtools-pro/internal/labels"
	"github.com/lamchakchan/devtools-pro/internal/query"
)

// CatalogModel is the main screen: search box, category chips, sort
// selector and the tool list. Every user action goes through the session;
// the model only keeps what it needs to draw.
type CatalogModel struct {
	theme   *Theme
	session *browse.Session
	search  textinput.Model
	choices []catalog.Category
	views   []browse.ToolView
	cursor  int
	scroll  int // index of first visible tool
	width   int
	height  int
}

// NewCatalog creates the catalog screen over session.
func NewCatalog(session *browse.Session, theme *Theme) *CatalogModel {
	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = labels.SearchHint
	ti.SetValue(session.State().Search)

	m := &CatalogModel{
		theme:   theme,
		session: session,
		search:  ti,
		choices: session.Catalog().FilterChoices(),
	}
	m.refresh()
	return m
}

func (m *CatalogModel) Init() tea.Cmd { return nil }

// apply sends ev to the session and redraws from its result.
func (m *CatalogModel) apply(ev browse.Event) {
	if m.session.Apply(ev) {
		m.refresh()
	}
}

// refresh reloads the display list, keeping the cursor on the same tool
// when it is still listed.
func (m *CatalogModel) refresh() {
	selected := -1
	if m.cursor < len(m.views) {
		selected = m.views[m.cursor].ID
	}
	m.views = m.session.Views()

	m.cursor = min(m.cursor, max(0, len(m.views)-1))
	for i, v := range m.views {
		if v.ID == selected {
			m.cursor = i
			break
		}
	}
	m.clampScroll()
}

func (m *CatalogModel) selectedIndex() int {
	cur := m.session.State().Category
	for i, c := range m.choices {
		if c.ID == cur {
			return i
		}
	}
	return 0
}

func (m *CatalogModel) stepCategory(delta int) {
	if len(m.choices) == 0 {
		return
	}
	n := len(m.choices)
	i := (m.selectedIndex() + delta + n) % n
	m.apply(browse.SelectCategory{ID: m.choices[i].ID})
}

func (m *CatalogModel) stepSort(delta int) {
	opts := query.SortOptions()
	cur := m.session.State().Sort
	i := 0
	for j, o := range opts {
		if o.Key == cur {
			i = j
		}
	}
	i = (i + delta + len(opts)) % len(opts)
	m.apply(browse.SetSort{Key: opts[i].Key})
}

// visibleRows returns how many tool rows fit under the header and above the
// footer at the current terminal height.
func (m *CatalogModel) visibleRows() int {
	if m.height <= 0 {
		return max(1, len(m.views))
	}
	overhead := lipgloss.Height(m.header()) + lipgloss.Height(m.footer()) + 1
	return max(1, m.height-overhead)
}

// clampScroll ensures the scroll offset keeps the cursor visible.
func (m *CatalogModel) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	m.scroll = max(0, min(m.scroll, len(m.views)-visible))
}

func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.SetWidth(max(10, msg.Width/2))
		m.clampScroll()
		return m, nil

	case tea.KeyPressMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.syncSearch()
		return m, cmd
	}
	return m, nil
}

// syncSearch applies the search box contents to the session when they
// differ from the current search term.
func (m *CatalogModel) syncSearch() {
	if term := m.search.Value(); term != m.session.State().Search {
		m.apply(browse.SetSearch{Term: term})
	}
}

// updateSearch handles keys while the search box has focus. Each edit is
// applied immediately so the list narrows as the user types.
func (m *CatalogModel) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		return m, tea.Quit
	case keyEsc, keyEnter, "down":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncSearch()
	return m, cmd
}

func (m *CatalogModel) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", keyCtrlC:
		return m, tea.Quit

	case keyEsc:
		if m.session.State().Search != "" {
			m.search.SetValue("")
			m.apply(browse.SetSearch{Term: ""})
			return m, nil
		}
		return m, popView

	case "/":
		return m, m.search.Focus()

	case "tab", "right", "l":
		m.stepCategory(1)
	case "shift+tab", "left", "h":
		m.stepCategory(-1)

	case "s":
		m.stepSort(1)
	case "S":
		m.stepSort(-1)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()
	case "down", "j":
		if m.cursor < len(m.views)-1 {
			m.cursor++
		}
		m.clampScroll()
	case "pgup":
		m.cursor = max(0, m.cursor-m.visibleRows())
		m.clampScroll()
	case "pgdown":
		m.cursor = max(0, min(len(m.views)-1, m.cursor+m.visibleRows()))
		m.clampScroll()
	case "g", "home":
		m.cursor = 0
		m.clampScroll()
	case "G", "end":
		m.cursor = max(0, len(m.views)-1)
		m.clampScroll()

	case "f", "space", " ":
		if len(m.views) > 0 {
			m.apply(browse.ToggleFavorite{ToolID: m.views[m.cursor].ID})
		}

	case keyEnter:
		if len(m.views) > 0 {
			return m, pushView(NewToolDetail(m.views[m.cursor], m.theme))
		}

	case "?":
		return m, pushView(NewHelp(m.theme))

	default:
		// Digits jump straight to a category chip: 0 is "all".
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if i := int(key[0] - '0'); i < len(m.choices) {
				m.apply(browse.SelectCategory{ID: m.choices[i].ID})
			}
		}
	}
	return m, nil
}

func (m *CatalogModel) header() string {
	var b strings.Builder
	b.WriteString(m.theme.HeroBanner(labels.Title, labels.Subtitle))
	b.WriteString("\n\n")
	b.WriteString(" " + m.search.View())
	b.WriteString("\n\n")
	b.WriteString(" " + m.chips())
	b.WriteString("\n")
	b.WriteString(" " + m.theme.HelpDesc.Render(labels.SortLabel) + " " + m.sortChoices())
	b.WriteString("\n")
	return b.String()
}

// chips renders the category filter row. The selected chip is drawn on its
// category color; the others are muted.
func (m *CatalogModel) chips() string {
	cur := m.session.State().Category
	parts := make([]string, 0, len(m.choices))
	for i, c := range m.choices {
		label := fmt.Sprintf("%d %s", i, c.Name)
		if c.ID == cur {
			parts = append(parts, m.theme.CategoryBadge(label, c.Color))
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1).Render(label))
	}
	return strings.Join(parts, " ")
}

func (m *CatalogModel) sortChoices() string {
	cur := m.session.State().Sort
	parts := make([]string, 0, 3)
	for _, o := range query.SortOptions() {
		if o.Key == cur {
			parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(o.Label))
			continue
		}
		parts = append(parts, m.theme.HelpDesc.Render(o.Label))
	}
	return strings.Join(parts, m.theme.HelpDesc.Render(" · "))
}

func (m *CatalogModel) footer() string {
	var b strings.Builder
	if len(m.views) > 0 {
		desc := m.views[m.cursor].Description
		if w := m.width - 4; w > 10 && len([]rune(desc)) > w {
			desc = string([]rune(desc)[:w-3]) + "..."
		}
		b.WriteString(" " + m.theme.Subtitle.Render(desc) + "\n")
	}
	b.WriteString("\n")
	if m.search.Focused() {
		b.WriteString(fmt.Sprintf(" %s valider  %s fermer",
			m.theme.HelpKey.Render(keyEnter),
			m.theme.HelpKey.Render(keyEsc)))
		return b.String()
	}
	b.WriteString(fmt.Sprintf(
		" %s rechercher  %s catégorie  %s tri  %s favori  %s détails  %s aide  %s quitter  %d/%d",
		m.theme.HelpKey.Render("/"),
		m.theme.HelpKey.Render("tab"),
		m.theme.HelpKey.Render("s"),
		m.theme.HelpKey.Render("f"),
		m.theme.HelpKey.Render(keyEnter),
		m.theme.HelpKey.Render("?"),
		m.theme.HelpKey.Render("q"),
		min(m.cursor+1, len(m.views)), len(m.views),
	))
	return b.String()
}

func (m *CatalogModel) row(v browse.ToolView, selected bool) string {
	name := v.Name
	nameStyle := lipgloss.NewStyle().Bold(true)
	if selected {
		nameStyle = nameStyle.Foreground(m.theme.Primary)
	}
	parts := []string{
		m.theme.FavoriteIcon(v.Favorite),
		nameStyle.Render(name),
		m.theme.CategoryBadge(v.CategoryLabel, v.CategoryColor),
		m.theme.RatingStr(v.Rating),
		"⬇ " + v.Downloads,
	}
	if v.IsNew {
		parts = append(parts, m.theme.NewBadgeStr())
	}
	line := strings.Join(parts, "  ")
	if selected {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("> ") + line
	}
	return "  " + line
}

func (m *CatalogModel) View() tea.View {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if len(m.views) == 0 {
		b.WriteString(m.theme.EmptyState(labels.EmptyTitle, labels.EmptyHint))
		b.WriteString("\n")
		b.WriteString(m.footer())
		return tea.NewView(b.String())
	}

	visible := m.visibleRows()
	end := min(m.scroll+visible, len(m.views))

	var rows strings.Builder
	for i := m.scroll; i < end; i++ {
		rows.WriteString(" " + m.row(m.views[i], i == m.cursor))
		if i < end-1 {
			rows.WriteString("\n")
		}
	}

	total := len(m.views)
	var scrollPct float64
	if total > visible {
		scrollPct = float64(m.scroll) / float64(total-visible)
	}
	bar := renderScrollbar(end-m.scroll, total, visible, scrollPct, m.theme)
	if bar != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rows.String(), " ", bar))
	} else {
		b.WriteString(rows.String())
	}
	b.WriteString("\n\n")
	b.WriteString(m.footer())

	return tea.NewView(b.String())
}
