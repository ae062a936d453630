package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"homecatalog/internal/model"
	"homecatalog/internal/repository"
	"homecatalog/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.LoadEmbedded()
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger))
	RegisterRoutes(router,
		NewCatalogHandler(service.NewCatalogService(store, logger)),
		NewContactHandler(service.NewContactService(logger)),
	)
	return router, logs
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBrowse(t *testing.T) {
	router, logs := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/catalogs/double-wide/homes?manufacturer=Franklin&beds=4", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view model.CatalogView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "double-wide", view.Catalog)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, 2, view.ActiveCount)
	require.Len(t, view.Homes, 1)
	assert.Equal(t, "dw-franklin-magnolia-32", view.Homes[0].ID)
	assert.Equal(t, "1,800 sq ft", view.Homes[0].SizeLabel)

	assert.Equal(t, 1, logs.FilterMessage("Request served").Len())
}

func TestBrowse_EmptyStateIsNotAnError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/catalogs/single-wide/homes?size=Over+1%2C200&beds=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view model.CatalogView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.Count)
	assert.Len(t, view.Pills, 2)
}

func TestBrowse_UnknownCatalog(t *testing.T) {
	router, logs := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/catalogs/triple-wide/homes", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Catalog not found")
	assert.Equal(t, 1, logs.FilterMessage("Request rejected").Len())
}

func TestListCatalogs(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/catalogs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Version  string                 `json:"version"`
		Catalogs []model.CatalogSummary `json:"catalogs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Version)
	assert.Len(t, body.Catalogs, 4)
}

func TestGetHome(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/homes/mod-bg-acadian-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var home model.HomeCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, "Acadian I", home.Name)
	assert.Equal(t, model.TypeModular, home.Type)

	w = doRequest(router, http.MethodGet, "/api/v1/homes/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Home not found")
}

func TestFeaturedAndManufacturers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/homes/featured", "")
	require.Equal(t, http.StatusOK, w.Code)
	var featured struct {
		Homes []model.HomeCard `json:"homes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	assert.Len(t, featured.Homes, 4)

	w = doRequest(router, http.MethodGet, "/api/v1/manufacturers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"singles_route":"/single-wide?manufacturer=Champion"`)
}

func TestContactSubmit(t *testing.T) {
	router, logs := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "Valid inquiry",
			body:     `{"name":"Ada","phone":"337-555-0100","email":"ada@example.com","message":"Is the Magnolia on the lot?","home_id":"dw-franklin-magnolia-32"}`,
			wantCode: http.StatusAccepted,
		},
		{
			name:     "Missing email",
			body:     `{"name":"Ada","phone":"337-555-0100","message":"Hi"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Malformed email",
			body:     `{"name":"Ada","phone":"337-555-0100","email":"not-an-email","message":"Hi"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Not JSON",
			body:     `name=Ada`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/contact", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}

	assert.Equal(t, 1, logs.FilterMessage("Contact inquiry received").Len())
}
