package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/devtools-pro/internal/labels"
)

// CategoryBadge renders a category label on its category color.
func (t *Theme) CategoryBadge(label, token string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.OnBadge).
		Background(t.CategoryColor(token)).
		Padding(0, 1).
		Render(label)
}

// NewBadgeStr renders the "new" badge shown on recently added tools.
func (t *Theme) NewBadgeStr() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.OnBadge).
		Background(t.Primary).
		Padding(0, 1).
		Render(labels.NewBadge)
}

// FavoriteIcon renders a filled heart for favorites, an outline otherwise.
func (t *Theme) FavoriteIcon(favorite bool) string {
	if favorite {
		return lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render("♥")
	}
	return lipgloss.NewStyle().Foreground(t.Muted).Render("♡")
}

// RatingStr renders a star followed by the rating.
func (t *Theme) RatingStr(rating float64) string {
	star := lipgloss.NewStyle().Foreground(t.Accent).Render("★")
	return fmt.Sprintf("%s %s", star, labels.FormatRating(rating))
}
