package pagereader

import (
	"fmt"

	"slotpage/pkg/debug/ui"
	"slotpage/pkg/primitives"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the interactive page viewer. The report is rendered once and
// scrolled through a viewport.
type Model struct {
	report   *Report
	content  string
	viewport viewport.Model
	help     help.Model
	keys     ui.KeyMap
	ready    bool
}

// NewModel creates a viewer for r.
func NewModel(r *Report) Model {
	return Model{
		report:  r,
		content: Render(r),
		help:    help.New(),
		keys:    ui.Keys,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 3
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading page...\n"
	}

	status := fmt.Sprintf(" %d records | %d%% ", len(m.report.Entries), int(m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" +
		ui.RenderStatusBar(status) + " " +
		m.help.View(m.keys)
}

// Run inspects the page at path and opens the interactive viewer.
func Run(path primitives.Filepath) error {
	r, err := InspectFile(path)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(NewModel(r), tea.WithAltScreen()).Run()
	return err
}
