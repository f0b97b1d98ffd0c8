package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/devtools-pro/internal/browse"
	"github.com/lamchakchan/devtools-pro/internal/labels"
)

// scrollbarWidth is the space reserved for the scrollbar column (space + char).
const scrollbarWidth = 2

// renderScrollbar returns a single-column string (one char per row) showing
// a scrollbar track with a proportional thumb. Returns empty string when
// all content fits on screen.
func renderScrollbar(trackHeight, totalItems, visibleItems int, scrollPercent float64, theme *Theme) string {
	if totalItems <= visibleItems || trackHeight < 1 {
		return ""
	}
	thumbSize := max(1, trackHeight*visibleItems/totalItems)
	thumbStart := max(0, int(scrollPercent*float64(trackHeight-thumbSize)))
	if thumbStart+thumbSize > trackHeight {
		thumbStart = trackHeight - thumbSize
	}

	track := lipgloss.NewStyle().Foreground(theme.Muted)
	thumb := lipgloss.NewStyle().Foreground(theme.Secondary)

	lines := make([]string, trackHeight)
	for i := range lines {
		if i >= thumbStart && i < thumbStart+thumbSize {
			lines[i] = thumb.Render("┃")
		} else {
			lines[i] = track.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

// viewerCopiedMsg clears the "Copié !" flash after a delay.
type viewerCopiedMsg struct{}

// ViewerModel wraps a bubbles viewport with a title bar, help footer,
// and scroll percentage indicator.
type ViewerModel struct {
	title    string
	content  string
	copyText string // what "y" puts on the clipboard; the content if empty
	viewport viewport.Model
	theme    *Theme
	ready    bool
	copied   bool
	width    int
	height   int
}

// NewViewer creates a viewer over content. It is sized on the first
// WindowSizeMsg or by SetSize.
func NewViewer(title, content string, theme *Theme) *ViewerModel {
	return &ViewerModel{
		title:   title,
		content: content,
		theme:   theme,
	}
}

// NewToolDetail creates a viewer showing everything about one tool. Copying
// puts the tool's link on the clipboard.
func NewToolDetail(v browse.ToolView, theme *Theme) *ViewerModel {
	m := NewViewer(v.Name, formatToolDetail(v, theme), theme)
	m.copyText = v.DownloadLink
	return m
}

const viewerHeaderLines = 4 // SectionBanner (3 lines) + blank line
const viewerFooterLines = 2 // blank line + help text

// SetSize initializes or resizes the viewport to the given dimensions.
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := max(1, height-viewerHeaderLines-viewerFooterLines)
	vpWidth := max(1, width-scrollbarWidth)
	if !m.ready {
		m.viewport = viewport.New(viewport.WithWidth(vpWidth), viewport.WithHeight(vpHeight))
		m.viewport.SoftWrap = true
		m.viewport.SetContent(m.content)
		m.ready = true
		return
	}
	m.viewport.SetWidth(vpWidth)
	m.viewport.SetHeight(vpHeight)
}

func (m *ViewerModel) Init() tea.Cmd { return nil }

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case viewerCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", keyCtrlC, keyEsc:
			return m, popView
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "y":
			text := m.copyText
			if text == "" {
				text = m.content
			}
			m.copied = true
			return m, tea.Batch(
				tea.SetClipboard(text),
				tea.Tick(2*time.Second, func(time.Time) tea.Msg {
					return viewerCopiedMsg{}
				}),
			)
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *ViewerModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner(m.title))
	b.WriteString("\n")

	if !m.ready {
		b.WriteString(m.content)
		return tea.NewView(b.String())
	}

	vpContent := m.viewport.View()
	totalLines := strings.Count(m.content, "\n") + 1
	vpHeight := m.viewport.Height()
	bar := renderScrollbar(vpHeight, totalLines, vpHeight, m.viewport.ScrollPercent(), m.theme)
	if bar != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, vpContent, " ", bar))
	} else {
		b.WriteString(vpContent)
	}
	b.WriteString("\n\n")

	// Footer
	pct := int(m.viewport.ScrollPercent() * 100)
	var trail string
	if m.copied {
		trail = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("Copié !")
	} else {
		trail = m.theme.HelpKey.Render(fmt.Sprintf("%d", pct)) + "%"
	}
	copyDesc := "copier"
	if m.copyText != "" {
		copyDesc = "copier le lien"
	}
	help := fmt.Sprintf(
		"%s défiler  %s/%s début/fin  %s %s  %s retour  %s",
		m.theme.HelpKey.Render("j/k"),
		m.theme.HelpKey.Render("g"),
		m.theme.HelpKey.Render("G"),
		m.theme.HelpKey.Render("y"),
		copyDesc,
		m.theme.HelpKey.Render(keyEsc),
		trail,
	)
	b.WriteString(help)

	return tea.NewView(b.String())
}

// formatToolDetail renders the full card for v: badges, description,
// features and link.
func formatToolDetail(v browse.ToolView, theme *Theme) string {
	var b strings.Builder

	header := []string{
		theme.FavoriteIcon(v.Favorite),
		theme.CategoryBadge(v.CategoryLabel, v.CategoryColor),
		theme.RatingStr(v.Rating),
		"⬇ " + v.Downloads,
	}
	if v.IsNew {
		header = append(header, theme.NewBadgeStr())
	}
	b.WriteString("  " + strings.Join(header, "  ") + "\n\n")

	for _, line := range labels.Wrap(v.Description, 72) {
		b.WriteString("  " + line + "\n")
	}

	if len(v.Features) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + theme.SectionHead.Render("Fonctionnalités") + "\n")
		for _, f := range v.Features {
			b.WriteString("    • " + f + "\n")
		}
	}

	b.WriteString("\n")
	link := lipgloss.NewStyle().Foreground(theme.Primary).Underline(true).Render(v.DownloadLink)
	b.WriteString(fmt.Sprintf("  %s → %s\n", labels.VisitLabel, link))

	return b.String()
}
