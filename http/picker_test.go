package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/pdfroulette"
	"github.com/bobinette/pdfroulette/gin"
	"github.com/bobinette/pdfroulette/mock"
	"github.com/bobinette/pdfroulette/services"
)

func createServer(t *testing.T) (http.Handler, *fixtures) {
	t.Helper()

	f := &fixtures{
		provider: &mock.CatalogProvider{
			Categories: []pdfroulette.Category{{ID: "ai", Name: "Artificial Intelligence"}},
			Pdfs: []pdfroulette.Pdf{
				{ID: "p1", Title: "Attention Is All You Need", Categories: []string{"ai"}, Available: true},
				{ID: "p2", Title: "Effective Go", Categories: []string{"programming"}, Available: true},
			},
		},
		histories: &mock.HistoryRepository{},
		filters:   &mock.FilterRepository{},
	}

	service := services.NewPickerService(f.provider, f.histories, f.filters, &mock.Logger{}, services.Options{
		URLParameters: true,
	})

	srv := gin.New()
	RegisterPickerEndpoints(srv, service)
	return srv.Handler(), f
}

type fixtures struct {
	provider  *mock.CatalogProvider
	histories *mock.HistoryRepository
	filters   *mock.FilterRepository
}

func do(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response should be json: %s", w.Body.String())
	return w, body
}

func TestRandom(t *testing.T) {
	handler, f := createServer(t)

	w, body := do(t, handler, "GET", "/pdfroulette/random")
	require.Equal(t, http.StatusOK, w.Code)

	var pdf pdfroulette.Pdf
	require.NoError(t, json.Unmarshal(body["data"], &pdf))
	assert.Contains(t, []string{"p1", "p2"}, pdf.ID)
	assert.Len(t, f.histories.Entries, 1)
}

func TestRandom_WithFilter(t *testing.T) {
	handler, _ := createServer(t)

	w, body := do(t, handler, "GET", "/pdfroulette/random?category=ai")
	require.Equal(t, http.StatusOK, w.Code)

	var pdf pdfroulette.Pdf
	require.NoError(t, json.Unmarshal(body["data"], &pdf))
	assert.Equal(t, "p1", pdf.ID)
}

func TestRandom_NoCandidates(t *testing.T) {
	handler, _ := createServer(t)

	w, body := do(t, handler, "GET", "/pdfroulette/random?categories=biology,chemistry")
	require.Equal(t, http.StatusNotFound, w.Code)

	var msg string
	require.NoError(t, json.Unmarshal(body["error"], &msg))
	assert.Contains(t, msg, "biology")
}

func TestRandom_CatalogUnavailable(t *testing.T) {
	handler, f := createServer(t)
	f.provider.Err = assert.AnError

	w, body := do(t, handler, "GET", "/pdfroulette/random")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, string(body["error"]), "catalog")
}

func TestResetHistory(t *testing.T) {
	handler, f := createServer(t)
	f.histories.Entries = pdfroulette.History{"p1"}

	w, _ := do(t, handler, "DELETE", "/pdfroulette/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.histories.Entries)
}

func TestCategories(t *testing.T) {
	handler, _ := createServer(t)

	w, body := do(t, handler, "GET", "/pdfroulette/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []pdfroulette.Category
	require.NoError(t, json.Unmarshal(body["data"], &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "ai", categories[0].ID)
}

func TestUnknownRoute(t *testing.T) {
	handler, _ := createServer(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
