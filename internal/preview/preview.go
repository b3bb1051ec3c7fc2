// Package preview plays the hero animation in a terminal.
package preview

import (
	"context"
	"errors"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/network"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			MarginLeft(2)

	typedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginLeft(2)
)

// chrome is the number of terminal rows used by text around the graph.
const chrome = 5

// FrameMsg delivers a hero frame to the model.
type FrameMsg hero.Frame

// Model is the bubbletea model for the preview.
type Model struct {
	gen    *network.Generator
	layout *network.Layout
	frame  hero.Frame
	err    error
}

// NewModel lays the graph out at the default hero size until the first
// window-size message arrives.
func NewModel(layers []int) (Model, error) {
	gen, err := network.NewGenerator(layers)
	if err != nil {
		return Model{}, err
	}
	layout, err := gen.Resize(60, 20)
	if err != nil {
		return Model{}, err
	}
	return Model{gen: gen, layout: layout}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		rows := msg.Height - chrome
		if rows < 3 {
			rows = 3
		}
		layout, err := m.gen.Resize(float64(msg.Width), float64(rows))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.layout, m.err = layout, nil
	case FrameMsg:
		m.frame = hero.Frame(msg)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("I am a "+typedStyle.Render(m.frame.Text)+"|") + "\n\n")
	if m.err != nil {
		b.WriteString(helpStyle.Render("cannot draw network: "+m.err.Error()) + "\n")
	} else {
		b.WriteString(m.grid())
	}
	b.WriteString("\n" + helpStyle.Render("q: quit") + "\n")
	return b.String()
}

// grid draws every node at its rounded cell position.
func (m Model) grid() string {
	w, h := int(m.layout.Width), int(m.layout.Height)
	if w <= 0 || h <= 0 {
		return ""
	}
	active := make(map[int]bool, len(m.frame.Active))
	for _, id := range m.frame.Active {
		active[id] = true
	}

	cells := make([][]string, h)
	for y := range cells {
		cells[y] = make([]string, w)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	for _, n := range m.layout.Nodes {
		x, y := int(math.Round(n.X)), int(math.Round(n.Y))
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		switch {
		case active[n.ID]:
			cells[y][x] = activeStyle.Render("●")
		case n.Color == network.Primary:
			cells[y][x] = primaryStyle.Render("●")
		default:
			cells[y][x] = neutralStyle.Render("○")
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	return b.String()
}

// Run plays the hero until the user quits or ctx is done.
func Run(ctx context.Context, cfg hero.Config) error {
	model, err := NewModel(cfg.Pulse.Layers)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	runner, err := hero.Run(ctx, cfg, func(f hero.Frame) {
		p.Send(FrameMsg(f))
	})
	if err != nil {
		return err
	}
	defer runner.Close()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
