package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/network"
)

func TestNewModel(t *testing.T) {
	m, err := NewModel(network.DefaultLayers)
	require.NoError(t, err)
	assert.Nil(t, m.Init())
	assert.Len(t, m.layout.Nodes, 28)

	_, err = NewModel([]int{1})
	assert.ErrorIs(t, err, network.ErrLayers)
}

func TestModel_FrameUpdatesView(t *testing.T) {
	m, err := NewModel(network.DefaultLayers)
	require.NoError(t, err)

	next, cmd := m.Update(FrameMsg(hero.Frame{Text: "Data Sci", Active: []int{0, 1}}))
	assert.Nil(t, cmd)
	view := next.View()
	assert.Contains(t, view, "Data Sci")
	assert.Contains(t, view, "q: quit")
	assert.Equal(t, 28, strings.Count(view, "●")+strings.Count(view, "○"))
}

func TestModel_WindowResize(t *testing.T) {
	m, err := NewModel(network.DefaultLayers)
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	resized := next.(Model)
	assert.Equal(t, 120.0, resized.layout.Width)
	assert.Equal(t, float64(40-chrome), resized.layout.Height)

	// Unchanged size reuses the cached layout.
	again, _ := resized.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Same(t, resized.layout, again.(Model).layout)

	tiny, _ := resized.Update(tea.WindowSizeMsg{Width: 0, Height: 2})
	assert.Error(t, tiny.(Model).err)
	assert.Contains(t, tiny.View(), "cannot draw network")
}

func TestModel_Quit(t *testing.T) {
	m, err := NewModel(network.DefaultLayers)
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}
