package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// SectionBanner renders a bold section header with a horizontal rule.
//
//	──────────────────────────────
//	▶ Title
func (t *Theme) SectionBanner(title string) string {
	rule := lipgloss.NewStyle().Foreground(t.Secondary).Render(strings.Repeat("─", 40))
	heading := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("▶ " + title)
	return fmt.Sprintf("\n%s\n  %s\n", rule, heading)
}

// HeroBanner renders the boxed title and tagline at the top of the catalog.
func (t *Theme) HeroBanner(title, subtitle string) string {
	return t.Banner.Render(t.Title.Render(title) + "\n" + t.Subtitle.Render(subtitle))
}

// EmptyState renders the centered "nothing matched" block.
func (t *Theme) EmptyState(title, hint string) string {
	return lipgloss.NewStyle().Padding(1, 4).Render(
		"🔍\n" +
			lipgloss.NewStyle().Bold(true).Render(title) + "\n" +
			lipgloss.NewStyle().Foreground(t.Muted).Render(hint),
	)
}
