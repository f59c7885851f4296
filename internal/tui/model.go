package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigcalc/internal/calc"
	"github.com/san-kum/trigcalc/internal/lut"
	"github.com/san-kum/trigcalc/internal/plot"
)

type focus int

const (
	focusInput focus = iota
	focusTable
)

const aboutText = `The calculator reads sin and cos from a lookup table precomputed
for every integer degree 0..359. Angles are rounded to the nearest degree
and reduced into the table, so no trig function is evaluated per query.`

// Model is the bubbletea model for the calculator.
type Model struct {
	session   *calc.Session
	focus     focus
	showAbout bool
	width     int
	plotCols  int
	maxCols   int
	plotRows  int
}

// New creates a model over s with a braille plot of plotCols x plotRows cells.
func New(s *calc.Session, plotCols, plotRows int) Model {
	return Model{
		session:  s,
		width:    80,
		plotCols: plotCols,
		maxCols:  plotCols,
		plotRows: plotRows,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// The configured width is an upper bound; follow the terminal below it.
		m.plotCols = m.maxCols
		if cols := msg.Width - 4; cols > 0 && cols < m.maxCols {
			m.plotCols = cols
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		if m.focus == focusInput {
			m.focus = focusTable
		} else {
			m.focus = focusInput
		}
		return m, nil
	case tea.KeyF1:
		m.showAbout = !m.showAbout
		return m, nil
	case tea.KeyEnter:
		_ = m.session.Submit()
		return m, nil
	}

	if m.focus == focusInput {
		return m.inputKey(msg)
	}
	return m.tableKey(msg)
}

func (m Model) inputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyBackspace:
		m.session.Backspace()
	case tea.KeyRunes, tea.KeySpace:
		m.session.Type(string(msg.Runes))
	}
	return m, nil
}

func (m Model) tableKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "t":
		m.session.ToggleTable()
	case "left", "h":
		m.session.NudgeStart(-1)
	case "right", "l":
		m.session.NudgeStart(1)
	case "down", "j":
		m.session.NudgeEnd(-1)
	case "up", "k":
		m.session.NudgeEnd(1)
	case "pgdown":
		m.session.NudgeStart(-10)
	case "pgup":
		m.session.NudgeStart(10)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trig Calculator with Lookup Table"))
	b.WriteString("\n\n")

	box := inputStyle
	if m.focus == focusInput {
		box = focusedInput
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("angle (degrees): "),
		box.Render(m.session.Input()+"_"),
	))
	b.WriteString("\n")

	if msg := m.session.Err(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	if lines := m.session.Lines(); lines != nil {
		var panel strings.Builder
		panel.WriteString(headerStyle.Render(fmt.Sprintf("Result for %s°:", m.session.Submitted())))
		for _, line := range lines {
			label, value, _ := strings.Cut(line, " = ")
			panel.WriteString("\n" + label + " = " + valueStyle.Render(value))
		}
		b.WriteString(resultPanel.Render(panel.String()))
		b.WriteString("\n")
	}

	if m.showAbout {
		b.WriteString("\n" + labelStyle.Render(aboutText) + "\n")
	}

	b.WriteString("\n")
	check := "[ ]"
	if m.session.ShowTable() {
		check = "[x]"
	}
	r := m.session.Range()
	b.WriteString(fmt.Sprintf("%s show lookup table   from %d  to %d\n", check, r.Start, r.End))
	if m.session.ShowTable() {
		b.WriteString(renderTable(m.session.Entries()))
	}

	if res, ok := m.session.Result(); ok {
		b.WriteString("\n" + headerStyle.Render("Sine Wave") + "\n")
		c := plot.Braille(res.Angle, m.plotCols, m.plotRows)
		b.WriteString(waveStyle.Render(strings.TrimRight(c.String(), "\n")))
		b.WriteString("\n" + plot.Labels(m.plotCols) + "\n")
	}

	b.WriteString("\n")
	if m.focus == focusInput {
		b.WriteString(hintStyle.Render("enter: calculate  tab: table controls  f1: about  esc: quit"))
	} else {
		b.WriteString(hintStyle.Render("space: toggle table  ←/→: from  ↑/↓: to  pgup/pgdn: from ±10  tab: input  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func renderTable(entries []lut.Entry) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s  %10s  %10s  %12s", "deg (°)", "sin", "cos", "tan")))
	b.WriteString("\n")
	for i, e := range entries {
		row := fmt.Sprintf("%8d  %10s  %10s  %12s", e.Degree,
			lut.FormatValue(e.Sin), lut.FormatValue(e.Cos), lut.FormatValue(e.Tan))
		if i%2 == 1 {
			row = stripeStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

// Run starts the terminal UI and blocks until it exits.
func Run(s *calc.Session, plotCols, plotRows int) error {
	p := tea.NewProgram(New(s, plotCols, plotRows))
	_, err := p.Run()
	return err
}
