package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmastrac/proc-pidinfo/internal/render"
	"github.com/mmastrac/proc-pidinfo/pkg/procinfo"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type viewKind int

const (
	viewFDs viewKind = iota
	viewFileports
)

type tickMsg time.Time

type refreshMsg struct {
	rows []render.Row
	err  error
}

type model struct {
	pid         procinfo.Pid
	comm        string
	view        viewKind
	table       table.Model
	filterInput textinput.Model
	filtering   bool
	rows        []render.Row
	paused      bool
	err         error
	width       int
	height      int
}

func newModel(pid procinfo.Pid) model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 64
	ti.Width = 30

	comm := fmt.Sprintf("pid %d", pid)
	if info, err := procinfo.PidInfo[procinfo.BSDShortInfo](pid); err == nil && info != nil {
		if name, err := info.Comm(); err == nil && name != "" {
			comm = render.Clean(name)
		}
	}

	m := model{
		pid:         pid,
		comm:        comm,
		view:        viewFDs,
		filterInput: ti,
	}
	m.initTable()
	return m
}

func (m *model) initTable() {
	idTitle := "FD"
	if m.view == viewFileports {
		idTitle = "Fileport"
	}
	columns := []table.Column{
		{Title: idTitle, Width: 10},
		{Title: "Type", Width: 10},
		{Title: "Detail", Width: max(20, m.width-26)},
	}

	height := m.height - 8
	if height < 5 {
		height = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)
	m.table = t
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), m.refresh())
}

func tick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) refresh() tea.Cmd {
	pid, view := m.pid, m.view
	return func() tea.Msg {
		var rows []render.Row
		var err error
		if view == viewFileports {
			rows, err = render.FileportRows(pid)
		} else {
			rows, err = render.FDRows(pid)
		}
		return refreshMsg{rows: rows, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.initTable()
		m.applyFilter()
		return m, nil

	case tickMsg:
		if m.paused {
			return m, tick()
		}
		return m, tea.Batch(tick(), m.refresh())

	case refreshMsg:
		m.rows, m.err = msg.rows, msg.err
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filterInput.Blur()
				m.applyFilter()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink
		case "f":
			if m.view == viewFDs {
				m.view = viewFileports
			} else {
				m.view = viewFDs
			}
			m.initTable()
			return m, m.refresh()
		case " ":
			m.paused = !m.paused
			return m, nil
		case "r":
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) applyFilter() {
	filter := strings.ToLower(m.filterInput.Value())
	detailWidth := max(20, m.width-26)
	var rows []table.Row
	for _, row := range m.rows {
		if filter != "" &&
			!strings.Contains(strings.ToLower(row.Detail), filter) &&
			!strings.Contains(strings.ToLower(row.Kind), filter) {
			continue
		}
		rows = append(rows, table.Row{row.ID, row.Kind, render.Truncate(row.Detail, detailWidth)})
	}
	m.table.SetRows(rows)
}

func (m model) View() string {
	what := "descriptors"
	if m.view == viewFileports {
		what = "fileports"
	}
	title := titleStyle.Render(fmt.Sprintf("%s · %d %s", m.comm, len(m.rows), what))
	if m.paused {
		title += helpStyle.Render("  (paused)")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(render.Clean(m.err.Error())))
		b.WriteString("\n")
	}
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filterInput.View())
	} else {
		b.WriteString(helpStyle.Render("q quit · / filter · f fds/fileports · space pause · r refresh"))
	}
	return b.String()
}

// Run opens the interactive descriptor inspector for a process.
func Run(pid procinfo.Pid) error {
	_, err := tea.NewProgram(newModel(pid), tea.WithAltScreen()).Run()
	return err
}
