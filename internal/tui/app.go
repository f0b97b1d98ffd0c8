package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/lamchakchan/devtools-pro/internal/browse"
)

// appModel is the root model that manages the navigation stack.
type appModel struct {
	stack  []tea.Model // view navigation stack
	width  int
	height int
	theme  Theme
}

// Run starts the interactive catalog browser over session. The caller
// decides whether a TUI is appropriate (TTY, accessibility settings).
func Run(session *browse.Session) error {
	_, err := tea.NewProgram(newApp(session)).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newApp(session *browse.Session) *appModel {
	app := &appModel{theme: DefaultTheme()}
	app.stack = []tea.Model{NewCatalog(session, &app.theme)}
	return app
}

func (m *appModel) Init() tea.Cmd {
	if len(m.stack) > 0 {
		return m.stack[len(m.stack)-1].Init()
	}
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.forward(msg)

	case PushViewMsg:
		m.stack = append(m.stack, msg.Model)
		initCmd := msg.Model.Init()
		// Forward current window size to newly pushed view.
		var sizeCmd tea.Cmd
		if m.width > 0 && m.height > 0 {
			sizeCmd = m.forward(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, tea.Batch(initCmd, sizeCmd)

	case PopViewMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
			// The revealed view may have missed resizes while covered.
			if m.width > 0 && m.height > 0 {
				return m, m.forward(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			}
			return m, nil
		}
		return m, tea.Quit
	}

	// Forward all other messages to the current view
	return m, m.forward(msg)
}

// forward delivers msg to the top of the stack.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	if len(m.stack) == 0 {
		return nil
	}
	top := len(m.stack) - 1
	updated, cmd := m.stack[top].Update(msg)
	m.stack[top] = updated
	return cmd
}

func (m *appModel) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if len(m.stack) > 0 {
		inner := m.stack[len(m.stack)-1].View()
		v.Content = inner.Content
	}
	return v
}
