package tui

import (
	"net/url"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
	"homecatalog/internal/repository"
)

func newModel(t *testing.T, def *catalog.Definition, query url.Values) Model {
	t.Helper()
	store, err := repository.LoadEmbedded()
	require.NoError(t, err)
	return New(catalog.NewSession(def, store.All(), query), store.Version())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestBrowse_InitialView(t *testing.T) {
	m := newModel(t, catalog.Modular, nil)

	assert.Nil(t, m.Init())
	view := m.View()
	assert.Contains(t, view, "Modular Homes")
	assert.Contains(t, view, "Browsing 5 of 5 homes")
	assert.Contains(t, view, "Acadian I")
	assert.Contains(t, view, "f filters")
	assert.NotContains(t, view, "Filters (")
}

func TestBrowse_SeededManufacturerShowsPill(t *testing.T) {
	m := newModel(t, catalog.DoubleWide, url.Values{"manufacturer": {"Franklin"}})

	view := m.View()
	assert.Contains(t, view, "Browsing 2 of 7 homes")
	assert.Contains(t, view, "Filters (1)")
	assert.Contains(t, view, "Franklin ×")
	assert.NotContains(t, view, "Sabine 36")
}

func TestBrowse_DrawerEditsLive(t *testing.T) {
	m := newModel(t, catalog.Modular, nil)

	m = press(m, "f")
	require.Equal(t, catalog.Editing, m.Session().Drawer())
	assert.Contains(t, m.View(), "View 5 Homes")

	// manufacturer is the first row
	m = press(m, "right")
	assert.Equal(t, "BG Manufacturing", m.Session().Criteria().Manufacturer)
	assert.Equal(t, 2, m.Session().Result().Count)
	assert.Contains(t, m.View(), "View 2 Homes")

	m = press(m, "down", "right")
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, "2", m.Session().Criteria().Beds)
	res := m.Session().Result()
	require.Len(t, res.Homes, 1)
	assert.Equal(t, "Creole Cottage", res.Homes[0].Name)

	// left wraps from All to the last option
	m = press(m, "left", "left")
	assert.Equal(t, "4", m.Session().Criteria().Beds)
	assert.True(t, m.Session().Result().Empty())
	assert.Contains(t, m.View(), "No homes found matching your criteria.")

	m = press(m, "x")
	assert.Equal(t, model.All, m.Session().Criteria().Beds)
	assert.Equal(t, 2, m.Session().Result().Count)

	m = press(m, "esc")
	assert.Equal(t, catalog.Idle, m.Session().Drawer())
	assert.Equal(t, "BG Manufacturing", m.Session().Criteria().Manufacturer)
	assert.Equal(t, 1, m.Session().ActiveCount())
}

func TestBrowse_CursorStaysInRange(t *testing.T) {
	m := newModel(t, catalog.Modular, nil)

	m = press(m, "f", "up")
	assert.Equal(t, 0, m.Cursor())

	m = press(m, "down", "down", "down", "down", "down")
	assert.Equal(t, len(catalog.Modular.Facets)-1, m.Cursor())
}

func TestBrowse_GridRemovesLastPill(t *testing.T) {
	m := newModel(t, catalog.Modular, url.Values{"manufacturer": {"Champion"}})
	m.Session().SetFacet(model.FacetSize, "Over 2,500")
	require.Equal(t, 2, m.Session().ActiveCount())

	m = press(m, "backspace")
	assert.Equal(t, model.All, m.Session().Criteria().Size)
	assert.Equal(t, "Champion", m.Session().Criteria().Manufacturer)

	m = press(m, "x")
	assert.Equal(t, 0, m.Session().ActiveCount())

	// nothing left to remove
	m = press(m, "x")
	assert.Equal(t, 0, m.Session().ActiveCount())
}

func TestBrowse_ClearAll(t *testing.T) {
	m := newModel(t, catalog.Modular, url.Values{"manufacturer": {"BG"}})
	m.Session().SetFacet(model.FacetBaths, "2")

	m = press(m, "f", "c")
	assert.Equal(t, model.NewFilterCriteria(), m.Session().Criteria())
	assert.Equal(t, catalog.Editing, m.Session().Drawer())

	m = press(m, "esc")
	m.Session().SetFacet(model.FacetBeds, "3")
	m = press(m, "c")
	assert.Equal(t, 0, m.Session().ActiveCount())
}

func TestBrowse_Quit(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{name: "q from grid", keys: []string{"q"}},
		{name: "q from drawer", keys: []string{"f", "q"}},
		{name: "ctrl+c", keys: []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, catalog.SingleWide, nil)
			m = press(m, tt.keys[:len(tt.keys)-1]...)

			_, cmd := m.Update(key(tt.keys[len(tt.keys)-1]))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestBrowse_WindowSize(t *testing.T) {
	m := newModel(t, catalog.AllHomes, nil)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, 1, m.cardsPerRow())

	next, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	m = next.(Model)
	assert.Equal(t, 5, m.cardsPerRow())
}
