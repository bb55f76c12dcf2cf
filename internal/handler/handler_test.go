package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/KOFI-GYIMAH/uc-orb/docs"
	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/internal/service"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	repos []models.Repository
	err   error
}

func (s *stubSource) LoadRepositories(ctx context.Context) ([]models.Repository, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Repository, len(s.repos))
	copy(out, s.repos)
	return out, nil
}

var fixture = []models.Repository{
	{ID: 1, Name: "ray", Description: "Scaling Python", URL: "https://github.com/ray-project/ray", Stars: 300, Forks: 30,
		Language: "Python", Campus: "UC Berkeley", Topics: []string{"ML", "data"}, LastUpdated: "2024-05-01"},
	{ID: 2, Name: "toolkit", Description: "python3 helpers", URL: "https://github.com/ucd/toolkit", Stars: 20, Forks: 2,
		Language: "Python3", Campus: "UC Davis", Topics: []string{"web"}, LastUpdated: "2024-01-01"},
	{ID: 3, Name: "cheetah", Description: "Geospatial", URL: "https://github.com/ucd/cheetah", Stars: 100, Forks: 10,
		Language: "Rust", Campus: "UC Davis", Topics: []string{"gis"}, LastUpdated: "2023-11-02"},
}

func newServer(t *testing.T, src *stubSource) *httptest.Server {
	t.Helper()
	h := NewRepositoryHandler(service.NewRepositoryService(src))
	server := httptest.NewServer(NewServerHandler(h, []string{"*"}))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, server *httptest.Server, path string, into any) *http.Response {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if into != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp
}

func TestSearchRepositories(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	tests := []struct {
		name string
		path string
		want []int
	}{
		{"no filters", "/api/repositories", []int{1, 2, 3}},
		{"trailing slash", "/api/repositories/", []int{1, 2, 3}},
		{"empty values are ignored", "/api/repositories?query=&campus=&language=&topic=", []int{1, 2, 3}},
		{"query", "/api/repositories?query=GEO", []int{3}},
		{"campus substring", "/api/repositories?campus=davis", []int{2, 3}},
		{"language exact", "/api/repositories?language=python", []int{1}},
		{"topic substring", "/api/repositories?topic=ml", []int{1}},
		{"campus and language", "/api/repositories?campus=Davis&language=Rust", []int{3}},
		{"no match", "/api/repositories?query=cobol", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var repos []models.Repository
			resp := get(t, server, tt.path, &repos)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			got := []int{}
			for _, r := range repos {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchRepositories_EmptyResultIsAList(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	resp, err := http.Get(server.URL + "/api/repositories?language=cobol")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw))
}

func TestGetRepository(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	t.Run("found", func(t *testing.T) {
		var repo models.Repository
		resp := get(t, server, "/api/repositories/2", &repo)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, fixture[1], repo)
	})

	t.Run("absent id is a 404", func(t *testing.T) {
		var body errors.HTTPErrorResponse
		resp := get(t, server, "/api/repositories/999999", &body)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, errors.RefNotFound, body.ErrorRef)
		assert.Equal(t, "Repository not found", body.Title)
	})

	t.Run("non-integer id is a 400", func(t *testing.T) {
		var body errors.HTTPErrorResponse
		resp := get(t, server, "/api/repositories/abc", &body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.RefInvalidParameter, body.ErrorRef)
	})
}

func TestDistinctEndpoints(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	tests := []struct {
		path string
		want []string
	}{
		{"/api/repositories/campuses", []string{"UC Berkeley", "UC Davis"}},
		{"/api/repositories/languages", []string{"Python", "Python3", "Rust"}},
		{"/api/repositories/topics", []string{"ML", "data", "gis", "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got []string
			resp := get(t, server, tt.path, &got)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStats(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	var stats models.CatalogStats
	resp := get(t, server, "/api/repositories/stats", &stats)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, stats.Repositories)
	assert.Equal(t, 420, stats.TotalStars)
	assert.Equal(t, 100.0, stats.MedianStars)
	assert.Equal(t, 300, stats.MaxStars)
}

func TestDataUnavailableIsA500(t *testing.T) {
	server := newServer(t, &stubSource{err: errors.DataUnavailable("Could not open data/repositories.json", nil)})

	for _, path := range []string{
		"/api/repositories",
		"/api/repositories/1",
		"/api/repositories/campuses",
		"/api/repositories/languages",
		"/api/repositories/topics",
		"/api/repositories/stats",
	} {
		t.Run(path, func(t *testing.T) {
			var body errors.HTTPErrorResponse
			resp := get(t, server, path, &body)

			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, errors.RefDataUnavailable, body.ErrorRef)
		})
	}
}

func TestWelcome(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	var body WelcomeResponse
	resp := get(t, server, "/", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, WelcomeResponse{Message: "Welcome to the UC ORB API", Docs: "/docs", OpenAPI: "/openapi.json"}, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var body HealthResponse
		resp := get(t, newServer(t, &stubSource{repos: fixture}), "/health", &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", body.Status)
	})

	t.Run("unavailable", func(t *testing.T) {
		var body HealthResponse
		resp := get(t, newServer(t, &stubSource{err: errors.DataUnavailable("gone", nil)}), "/health", &body)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unavailable", body.Status)
	})
}

func TestOpenAPIDocument(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	resp := get(t, server, "/openapi.json", &doc)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Contains(t, doc.Paths, "/api/repositories/{id}")
}

func TestMethodNotAllowed(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	resp, err := http.Post(server.URL+"/api/repositories", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestUnmatchedRouteGetsRequestID(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	resp, err := http.Get(server.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestPreflightThroughRouter(t *testing.T) {
	server := newServer(t, &stubSource{repos: fixture})

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/repositories", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
