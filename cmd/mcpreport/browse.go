package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/unbound-force/mcpreport/internal/accordion"
	"github.com/unbound-force/mcpreport/internal/page"
	"github.com/unbound-force/mcpreport/internal/report"
)

// keyMap defines keybindings for the report browser.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Toggle   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle},
		{k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Next:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("v/j", "next section")),
	Prev:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("^/k", "prev section")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "expand/collapse")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// browseModel is the Bubble Tea model for the report browser. Each
// collapsible section keeps its own state in the accordion; the cursor
// selects which one the toggle key acts on.
type browseModel struct {
	doc      page.Document
	sections *accordion.Accordion
	cursor   int
	styles   report.Styles
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
}

func newBrowseModel(doc page.Document) browseModel {
	return browseModel{
		doc:      doc,
		sections: accordion.New(doc.SectionIDs()...),
		styles:   report.DefaultStyles(),
		help:     help.New(),
		keys:     defaultKeyMap,
	}
}

// focused returns the id of the section under the cursor.
func (m browseModel) focused() string {
	ids := m.sections.IDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[m.cursor]
}

func (m browseModel) renderContent() string {
	var sb strings.Builder
	sb.WriteString(report.RenderHeader(m.doc, m.styles))
	sb.WriteString("\n\n")
	sb.WriteString(report.RenderOverview(m.doc, m.styles))
	sb.WriteString("\n\n")
	sb.WriteString(report.RenderCoverage(m.doc, m.styles))
	sb.WriteString("\n")

	focused := m.focused()
	for _, sec := range m.doc.Sections {
		block := report.RenderSection(sec, m.sections.IsExpanded(sec.ID), m.styles)
		if sec.ID == focused {
			lines := strings.SplitN(block, "\n", 2)
			lines[0] = m.styles.Focus.Render(lines[0])
			block = strings.Join(lines, "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(block)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		n := len(m.sections.IDs())
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
			return m.refresh(), nil
		case key.Matches(msg, m.keys.Prev):
			if n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
			}
			return m.refresh(), nil
		case key.Matches(msg, m.keys.Toggle):
			if id := m.focused(); id != "" {
				state, err := m.sections.Toggle(id)
				if err != nil {
					logger.Error("toggling section", "err", err)
					return m, nil
				}
				logger.Debug("section toggled", "section", id, "state", state)
			}
			return m.refresh(), nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browseModel) refresh() browseModel {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
	return m
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runBrowse launches the Bubble Tea TUI for browsing the report.
func runBrowse() error {
	model := newBrowseModel(page.New())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the test report interactively",
		Long: `Browse the test report in the terminal. Move between the
collapsible sections with the arrow keys and expand or collapse the
focused section with enter. Sections start collapsed and toggle
independently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse()
		},
	}
}
