package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpModel shows a keybinding reference overlay.
type HelpModel struct {
	theme *Theme
}

// NewHelp creates a new help overlay.
func NewHelp(theme *Theme) *HelpModel {
	return &HelpModel{theme: theme}
}

func (m *HelpModel) Init() tea.Cmd { return nil }

func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		if IsQuit(msg) || IsBack(msg) || msg.String() == "?" {
			return m, popView
		}
	}
	return m, nil
}

func (m *HelpModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner("Raccourcis clavier"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Width(20)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	sections := []struct {
		title string
		binds [][2]string
	}{
		{
			title: "Recherche",
			binds: [][2]string{
				{"/", "Ouvrir la recherche"},
				{keyEnter + " / esc", "Quitter la recherche"},
				{"esc", "Effacer la recherche"},
			},
		},
		{
			title: "Filtres",
			binds: [][2]string{
				{"tab / → / l", "Catégorie suivante"},
				{"shift+tab / ← / h", "Catégorie précédente"},
				{"0-9", "Aller à la catégorie (0 = Tous)"},
				{"s / S", "Tri suivant / précédent"},
			},
		},
		{
			title: "Outils",
			binds: [][2]string{
				{"↑ / k", "Monter"},
				{"↓ / j", "Descendre"},
				{"pgup / pgdn", "Page précédente / suivante"},
				{"g / G", "Début / fin"},
				{"f / space", "Ajouter / retirer des favoris"},
				{keyEnter, "Afficher les détails"},
			},
		},
		{
			title: "Détails",
			binds: [][2]string{
				{"j / k", "Défiler"},
				{"y", "Copier le lien"},
				{"esc / q", "Fermer"},
			},
		},
		{
			title: "Général",
			binds: [][2]string{
				{"?", "Afficher / masquer cet écran"},
				{"q / ctrl+c", "Quitter"},
			},
		},
	}

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Secondary)

	for _, section := range sections {
		b.WriteString(headStyle.Render(section.title))
		b.WriteString("\n")
		for _, bind := range section.binds {
			b.WriteString("  " + keyStyle.Render(bind[0]) + descStyle.Render(bind[1]) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.HelpKey.Render("esc / q / ?") + " " + m.theme.HelpDesc.Render("fermer"))

	return tea.NewView(b.String())
}
