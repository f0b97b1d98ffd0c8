// Package tui provides the Bubble Tea terminal UI for devtools: a searchable,
// filterable catalog view with a detail viewer and a keybinding overlay.
package tui

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/devtools-pro/internal/catalog"
)

// IsAccessible returns true when the environment requests accessible (no-color) output.
// Respects the NO_COLOR standard (https://no-color.org) and ACCESSIBLE=1.
func IsAccessible() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("ACCESSIBLE") == "1"
}

// Theme holds the lipgloss styles used throughout the TUI.
type Theme struct {
	// Brand colors
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	// Status colors
	Success color.Color
	Error   color.Color
	Muted   color.Color
	OnBadge color.Color

	// Component styles
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	SectionHead lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style

	// Box styles
	Banner lipgloss.Style

	// categories maps catalog color tokens to terminal colors.
	categories map[string]color.Color
}

// DefaultTheme returns the standard devtools visual theme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#2563EB")   // blue-600
	secondary := lipgloss.Color("#6366F1") // indigo-500
	accent := lipgloss.Color("#FACC15")    // yellow-400, rating stars

	success := lipgloss.Color("#10B981")  // emerald
	errColor := lipgloss.Color("#EF4444") // red
	muted := lipgloss.Color("#6B7280")    // gray
	white := lipgloss.Color("#FFFFFF")

	return Theme{
		Primary:   primary,
		Secondary: secondary,
		Accent:    accent,
		Success:   success,
		Error:     errColor,
		Muted:     muted,
		OnBadge:   white,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted),

		SectionHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted),

		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 2),

		categories: map[string]color.Color{
			"bg-gray-600":    lipgloss.Color("#4B5563"),
			"bg-blue-600":    lipgloss.Color("#2563EB"),
			"bg-purple-600":  lipgloss.Color("#9333EA"),
			"bg-emerald-600": lipgloss.Color("#059669"),
			"bg-red-600":     lipgloss.Color("#DC2626"),
			"bg-indigo-600":  lipgloss.Color("#4F46E5"),
		},
	}
}

// CategoryColor resolves a catalog color token. Unknown tokens fall back to
// the default gray used for "all" and for unlabeled tools.
func (t *Theme) CategoryColor(token string) color.Color {
	if c, ok := t.categories[token]; ok {
		return c
	}
	if c, ok := t.categories[catalog.DefaultCategoryColor]; ok {
		return c
	}
	return t.Muted
}
