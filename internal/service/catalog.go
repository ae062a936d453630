package service

import (
	"errors"
	"net/url"

	"go.uber.org/zap"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
	"homecatalog/internal/repository"
	"homecatalog/internal/utils"
)

// ErrCatalogNotFound is returned for an unknown catalog id
var ErrCatalogNotFound = errors.New("catalog not found")

// CatalogService derives catalog views from the in-memory store
type CatalogService struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *repository.Store, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Version returns the loaded dataset version
func (s *CatalogService) Version() string {
	return s.store.Version()
}

// NewSession opens a filter session for a catalog, seeding the
// manufacturer from query
func (s *CatalogService) NewSession(catalogID string, query url.Values) (*catalog.Session, error) {
	def, ok := catalog.Lookup(catalogID)
	if !ok {
		return nil, ErrCatalogNotFound
	}
	return catalog.NewSession(def, s.store.ForCatalog(def), query), nil
}

// Browse returns the filtered view of a catalog. The manufacturer is seeded
// like a navigation link; the remaining facets are read from the same query
// so a client can hold its own selections. Unrecognized values become All.
func (s *CatalogService) Browse(catalogID string, query url.Values) (*model.CatalogView, error) {
	session, err := s.NewSession(catalogID, query)
	if err != nil {
		return nil, err
	}

	for _, f := range session.Definition().Facets {
		if f == model.FacetManufacturer {
			continue
		}
		raw := query.Get(string(f))
		if raw == "" {
			continue
		}
		if got := session.SetFacet(f, raw); got == model.All && raw != model.All {
			s.logger.Debug("Ignoring unrecognized facet value",
				zap.String("catalog", catalogID),
				zap.String("facet", string(f)),
				zap.String("value", raw))
		}
	}

	view := s.View(session)
	s.logger.Debug("Catalog browsed",
		zap.String("catalog", catalogID),
		zap.Int("active_filters", view.ActiveCount),
		zap.Int("count", view.Count),
		zap.Int("total", view.Total))
	return view, nil
}

// View derives the full screen state of a session
func (s *CatalogService) View(session *catalog.Session) *model.CatalogView {
	def := session.Definition()
	res := session.Result()
	return &model.CatalogView{
		Catalog:     def.ID,
		Title:       def.Title,
		Version:     s.store.Version(),
		Homes:       Cards(res.Homes),
		Count:       res.Count,
		Total:       len(session.Homes()),
		ActiveCount: res.ActiveCount,
		Criteria:    res.Criteria,
		Facets:      FacetGroups(session),
		Pills:       Pills(def, res.Criteria),
		Empty:       res.Empty(),
	}
}

// Catalogs lists every catalog with its unfiltered option lists
func (s *CatalogService) Catalogs() []model.CatalogSummary {
	out := make([]model.CatalogSummary, 0, len(catalog.Definitions))
	for _, def := range catalog.Definitions {
		session := catalog.NewSession(def, s.store.ForCatalog(def), nil)
		out = append(out, model.CatalogSummary{
			ID:     def.ID,
			Title:  def.Title,
			Total:  len(session.Homes()),
			Facets: FacetGroups(session),
		})
	}
	return out
}

// GetHome retrieves a single listing by ID; nil when it does not exist
func (s *CatalogService) GetHome(id string) *model.HomeCard {
	h, ok := s.store.Get(id)
	if !ok {
		return nil
	}
	card := Card(*h)
	return &card
}

// Featured returns the featured listings in dataset order
func (s *CatalogService) Featured() []model.HomeCard {
	return Cards(s.store.Featured())
}

// Manufacturers returns the directory with links that preselect the
// manufacturer on the single-wide and double-wide catalogs
func (s *CatalogService) Manufacturers() []model.ManufacturerEntry {
	homes := s.store.All()
	out := make([]model.ManufacturerEntry, 0, len(s.store.Manufacturers()))
	for _, m := range s.store.Manufacturers() {
		count := 0
		for _, h := range homes {
			if utils.FuzzyMatchManufacturer(h.Manufacturer, m.DisplayName) {
				count++
			}
		}
		q := url.Values{catalog.QueryManufacturer: {m.DisplayName}}.Encode()
		out = append(out, model.ManufacturerEntry{
			Manufacturer: m,
			SinglesRoute: "/" + catalog.IDSingleWide + "?" + q,
			DoublesRoute: "/" + catalog.IDDoubleWide + "?" + q,
			HomeCount:    count,
		})
	}
	return out
}
