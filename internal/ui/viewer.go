package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewViewerModel returns a Bubble Tea model that pages through content.
func NewViewerModel(title, content string) tea.Model {
	return &viewerModel{title: title, content: content}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *viewerModel) headerView() string {
	return headerStyle.Render(m.title)
}

func (m *viewerModel) footerView() string {
	pct := edgeStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	help := edgeStyle.Render("↑/↓ scroll · q quit")
	gap := m.viewport.Width - lipgloss.Width(pct) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return help + strings.Repeat(" ", gap) + pct
}

// RunViewer pages content in an alternate-screen session; it blocks
// until the user quits.
func RunViewer(title, content string) error {
	p := tea.NewProgram(NewViewerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
