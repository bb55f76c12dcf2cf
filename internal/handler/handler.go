package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/internal/service"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type RepositoryHandler struct {
	service *service.RepositoryService
}

func NewRepositoryHandler(service *service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		service: service,
	}
}

// * RegisterRoutes mounts the catalog routes. The fixed paths are registered
// * before /{id} so they are never read as an id.
func (h *RepositoryHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/repositories", h.searchRepositories).Methods("GET")
	r.HandleFunc("/repositories/", h.searchRepositories).Methods("GET")
	r.HandleFunc("/repositories/campuses", h.getCampuses).Methods("GET")
	r.HandleFunc("/repositories/languages", h.getLanguages).Methods("GET")
	r.HandleFunc("/repositories/topics", h.getTopics).Methods("GET")
	r.HandleFunc("/repositories/stats", h.getStats).Methods("GET")
	r.HandleFunc("/repositories/{id}", h.getRepository).Methods("GET")
}

// * RegisterRootRoutes mounts the welcome, health and documentation routes
func (h *RepositoryHandler) RegisterRootRoutes(r *mux.Router) {
	r.HandleFunc("/", h.welcome).Methods("GET")
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/openapi.json", openAPI).Methods("GET")
	r.Handle("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently))
	r.PathPrefix("/docs/").Handler(httpSwagger.Handler(httpSwagger.URL("/openapi.json")))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response: %v", err)
	}
}

// welcome godoc
// @Summary Welcome
// @Description Names the service and points to the interactive documentation
// @Tags Meta
// @Produce json
// @Success 200 {object} handler.WelcomeResponse
// @Router / [get]
func (h *RepositoryHandler) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WelcomeResponse{
		Message: "Welcome to the UC ORB API",
		Docs:    "/docs",
		OpenAPI: "/openapi.json",
	})
}

// health godoc
// @Summary Health
// @Description Reports whether the repository data can be loaded
// @Tags Meta
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 503 {object} handler.HealthResponse
// @Router /health [get]
func (h *RepositoryHandler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.ListAll(r.Context()); err != nil {
		logger.Warn("health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func openAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// searchRepositories godoc
// @Summary Search Repositories
// @Description List repositories, optionally filtered. Query, campus and topic match substrings; language matches exactly. All matching ignores case.
// @Tags Repositories
// @Produce json
// @Param query query string false "Search term for name or description"
// @Param campus query string false "Filter by campus"
// @Param language query string false "Filter by programming language"
// @Param topic query string false "Filter by topic"
// @Success 200 {array} models.Repository
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories [get]
func (h *RepositoryHandler) searchRepositories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := models.FilterCriteria{
		Query:    q.Get("query"),
		Campus:   q.Get("campus"),
		Language: q.Get("language"),
		Topic:    q.Get("topic"),
	}

	repos, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}
	if repos == nil {
		repos = []models.Repository{}
	}

	writeJSON(w, http.StatusOK, repos)
}

// getCampuses godoc
// @Summary List Campuses
// @Description Distinct campus values, sorted
// @Tags Repositories
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories/campuses [get]
func (h *RepositoryHandler) getCampuses(w http.ResponseWriter, r *http.Request) {
	h.writeDistinct(w, r, "campuses", h.service.DistinctCampuses)
}

// getLanguages godoc
// @Summary List Languages
// @Description Distinct programming languages, sorted
// @Tags Repositories
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories/languages [get]
func (h *RepositoryHandler) getLanguages(w http.ResponseWriter, r *http.Request) {
	h.writeDistinct(w, r, "languages", h.service.DistinctLanguages)
}

// getTopics godoc
// @Summary List Topics
// @Description Distinct topics across every repository, sorted
// @Tags Repositories
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories/topics [get]
func (h *RepositoryHandler) getTopics(w http.ResponseWriter, r *http.Request) {
	h.writeDistinct(w, r, "topics", h.service.DistinctTopics)
}

func (h *RepositoryHandler) writeDistinct(w http.ResponseWriter, r *http.Request, field string, fetch func(ctx context.Context) ([]string, error)) {
	values, err := fetch(r.Context())
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Debug("Fetched %d distinct %s", len(values), field)
	writeJSON(w, http.StatusOK, values)
}

// getStats godoc
// @Summary Catalog Statistics
// @Description Star and fork aggregates across the catalog
// @Tags Repositories
// @Produce json
// @Success 200 {object} models.CatalogStats
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories/stats [get]
func (h *RepositoryHandler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// getRepository godoc
// @Summary Get Repository
// @Description Fetch a single repository by its id
// @Tags Repositories
// @Produce json
// @Param id path int true "Repository ID"
// @Success 200 {object} models.Repository
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 404 {object} errors.HTTPErrorResponse
// @Failure 500 {object} errors.HTTPErrorResponse
// @Router /api/repositories/{id} [get]
func (h *RepositoryHandler) getRepository(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.Atoi(raw)
	if err != nil {
		errors.WriteHTTPError(w, errors.InvalidParameter(
			fmt.Sprintf("Repository id %q is not an integer", raw),
			err,
		))
		return
	}

	repository, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	if repository == nil {
		errors.WriteHTTPError(w, errors.NotFound(fmt.Sprintf("No repository with id %d", id)))
		return
	}

	logger.Debug("Fetched repository %d", id)
	writeJSON(w, http.StatusOK, repository)
}
