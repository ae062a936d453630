package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
	"homecatalog/internal/service"
)

// Model is the catalog browser. The grid is visible while the drawer is
// open so every change shows up immediately.
type Model struct {
	session *catalog.Session
	version string
	cursor  int
	width   int
	styles  Styles
}

// New creates a browser over a filter session
func New(session *catalog.Session, version string) Model {
	return Model{
		session: session,
		version: version,
		width:   80,
		styles:  DefaultStyles(),
	}
}

// Run starts the browser and blocks until the user quits
func Run(session *catalog.Session, version string) error {
	_, err := tea.NewProgram(New(session, version), tea.WithAltScreen()).Run()
	return err
}

// Session returns the filter session driving the browser
func (m Model) Session() *catalog.Session {
	return m.session
}

// Cursor returns the facet row selected in the drawer
func (m Model) Cursor() int {
	return m.cursor
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.session.Drawer() == catalog.Editing {
			return m.updateDrawer(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f", "enter":
		m.session.OpenDrawer()
	case "c":
		m.session.ClearAll()
	case "backspace", "x":
		// remove the last pill
		pills := service.Pills(m.session.Definition(), m.session.Criteria())
		if len(pills) > 0 {
			m.session.ClearFacet(pills[len(pills)-1].Facet)
		}
	}
	return m, nil
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	facets := m.session.Definition().Facets
	switch msg.String() {
	case "esc", "enter", "f":
		m.session.CloseDrawer()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(facets)-1 {
			m.cursor++
		}
	case "right", "l", " ":
		m.cycle(facets[m.cursor], 1)
	case "left", "h":
		m.cycle(facets[m.cursor], -1)
	case "backspace", "x":
		m.session.ClearFacet(facets[m.cursor])
	case "c":
		m.session.ClearAll()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// cycle moves facet f to the next or previous option, wrapping around
func (m Model) cycle(f model.Facet, step int) {
	options := m.session.Options(f)
	current := m.session.Criteria().Get(f)
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	next := (idx + step + len(options)) % len(options)
	m.session.SetFacet(f, options[next])
}

// View renders the browser.
func (m Model) View() string {
	grid := m.viewGrid()
	if m.session.Drawer() != catalog.Editing {
		return grid + m.styles.Help.Render("f filters · x remove last filter · c clear · q quit")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewDrawer(), "  ", grid)
}

func (m Model) viewGrid() string {
	res := m.session.Result()
	def := m.session.Definition()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(def.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Browsing %d of %d homes", res.Count, len(m.session.Homes()))))
	if res.ActiveCount > 0 {
		sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf(" · Filters (%d)", res.ActiveCount)))
	}
	if m.version != "" {
		sb.WriteString(m.styles.Subtle.Render(" · catalog " + m.version))
	}
	sb.WriteString("\n")

	if pills := service.Pills(def, res.Criteria); len(pills) > 0 {
		for _, p := range pills {
			sb.WriteString(m.styles.Pill.Render(p.Label + " ×"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if res.Empty() {
		sb.WriteString(m.styles.Empty.Render("No homes found matching your criteria.\nPress c to clear filters."))
		sb.WriteString("\n")
		return sb.String()
	}

	cards := make([]string, 0, len(res.Homes))
	for _, h := range res.Homes {
		cards = append(cards, m.styles.Card.Render(
			m.styles.CardName.Render(h.Name)+"\n"+
				m.styles.Subtle.Render(h.Manufacturer+" · "+string(h.Type))+"\n"+
				fmt.Sprintf("%d bd · %s ba · %s", h.Beds, service.FormatBaths(h.Baths), service.SizeLabel(h.Sqft)),
		))
	}

	perRow := m.cardsPerRow()
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) cardsPerRow() int {
	available := m.width
	if m.session.Drawer() == catalog.Editing {
		available -= 40
	}
	n := available / 36
	if n < 1 {
		return 1
	}
	return n
}

func (m Model) viewDrawer() string {
	def := m.session.Definition()
	criteria := m.session.Criteria()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Filters"))
	sb.WriteString("\n")
	for i, f := range def.Facets {
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.Cursor.Render("> ")
		}
		sb.WriteString(m.styles.Heading.Render(prefix + catalog.FacetTitle(f)))
		sb.WriteString("\n")
		for _, opt := range m.session.Options(f) {
			label := service.OptionLabel(def, f, opt)
			if criteria.Get(f) == opt {
				sb.WriteString("    " + m.styles.Selected.Render("(•) "+label))
			} else {
				sb.WriteString("    ( ) " + label)
			}
			sb.WriteString("\n")
		}
	}

	res := m.session.Result()
	sb.WriteString("\n")
	sb.WriteString(m.styles.Selected.Render(fmt.Sprintf("View %d Homes", res.Count)))
	if res.ActiveCount > 0 {
		sb.WriteString("\n" + m.styles.Subtle.Render("c clear all filters"))
	}
	sb.WriteString("\n" + m.styles.Subtle.Render("↑/↓ facet · ←/→ value · esc close"))
	return m.styles.Drawer.Render(sb.String())
}
