// Package labels holds the user-facing copy shared by the interactive
// browser and the plain-text commands, plus the small formatters both use.
package labels

import (
	"fmt"
	"strings"
)

const (
	Title          = "DevTools Pro"
	Subtitle       = "Des outils open-source premium pour les développeurs modernes"
	EmptyTitle     = "Aucun outil trouvé"
	EmptyHint      = "Essayez de modifier vos critères de recherche"
	NewBadge       = "Nouveau"
	VisitLabel     = "Visiter"
	SortLabel      = "Trier par :"
	SearchHint     = "Rechercher un outil..."
	CategoryPrompt = "Catégorie :"
)

// FormatRating renders a rating with one decimal, as it is stored.
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// Wrap breaks s into lines of at most width runes on word boundaries.
// Words longer than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
