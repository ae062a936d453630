package catalog

import (
	"net/url"

	"homecatalog/internal/model"
)

// DrawerState is the open/closed state of the filter drawer
type DrawerState int

const (
	// Idle means the drawer is closed and the grid has focus
	Idle DrawerState = iota
	// Editing means the drawer is open
	Editing
)

func (s DrawerState) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// QueryManufacturer is the navigation query parameter that preselects a
// manufacturer when a catalog screen is opened
const QueryManufacturer = "manufacturer"

// Session owns the filter state of one catalog screen. Selections apply
// immediately; opening or closing the drawer never changes them.
type Session struct {
	def      *Definition
	homes    []model.HomeListing
	criteria model.FilterCriteria
	drawer   DrawerState
}

// NewSession starts a session over the listings of def found in homes.
// The manufacturer facet is seeded from query; an unrecognized value
// leaves it at All. The query is read only here.
func NewSession(def *Definition, homes []model.HomeListing, query url.Values) *Session {
	s := &Session{
		def:      def,
		homes:    def.Collection(homes),
		criteria: model.NewFilterCriteria(),
		drawer:   Idle,
	}
	if query != nil {
		if raw := query.Get(QueryManufacturer); raw != "" {
			s.SetFacet(model.FacetManufacturer, raw)
		}
	}
	return s
}

// Definition returns the catalog this session browses
func (s *Session) Definition() *Definition {
	return s.def
}

// Homes returns the full catalog collection, unfiltered
func (s *Session) Homes() []model.HomeListing {
	return s.homes
}

// Criteria returns the current selections
func (s *Session) Criteria() model.FilterCriteria {
	return s.criteria
}

// SetFacet selects value for facet f and returns the value actually stored
// after normalization
func (s *Session) SetFacet(f model.Facet, value string) string {
	v := s.def.Normalize(s.homes, f, value)
	s.criteria = s.criteria.With(f, v)
	return v
}

// ClearFacet resets a single facet to All
func (s *Session) ClearFacet(f model.Facet) {
	s.criteria = s.criteria.With(f, model.All)
}

// ClearAll resets every facet to All
func (s *Session) ClearAll() {
	s.criteria = model.NewFilterCriteria()
}

// ActiveCount returns the number of constrained facets
func (s *Session) ActiveCount() int {
	return s.criteria.ActiveCount()
}

// Options returns the selectable values for facet f
func (s *Session) Options(f model.Facet) []string {
	return s.def.Options(s.homes, f)
}

// Result filters the catalog with the current selections
func (s *Session) Result() Result {
	return s.def.Apply(s.homes, s.criteria)
}

// Drawer returns the drawer state
func (s *Session) Drawer() DrawerState {
	return s.drawer
}

// OpenDrawer moves the session to Editing
func (s *Session) OpenDrawer() {
	s.drawer = Editing
}

// CloseDrawer moves the session to Idle, keeping every selection
func (s *Session) CloseDrawer() {
	s.drawer = Idle
}

// ToggleDrawer flips between Idle and Editing
func (s *Session) ToggleDrawer() {
	if s.drawer == Editing {
		s.CloseDrawer()
		return
	}
	s.OpenDrawer()
}
