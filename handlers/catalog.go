package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"whisper/services/catalog"
)

type catalogService interface {
	Home(ctx context.Context) (catalog.HomePage, error)
	Movies(ctx context.Context) ([]catalog.Row, error)
	TV(ctx context.Context) ([]catalog.Row, error)
	Trending(ctx context.Context) ([]catalog.Row, error)
	Upcoming(ctx context.Context, page int) (catalog.Row, error)
	TopRated(ctx context.Context, page int) (catalog.Row, error)
	Search(ctx context.Context, query, mediaType string) (catalog.SearchResults, error)
}

var _ catalogService = (*catalog.Service)(nil)

// CatalogHandler serves the aggregated listing pages and search.
type CatalogHandler struct {
	Service catalogService
}

func NewCatalogHandler(s catalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.Home(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CatalogHandler) Movies(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Movies(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

func (h *CatalogHandler) TV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.TV(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

func (h *CatalogHandler) Trending(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Trending(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 0
	}
	return page
}

func (h *CatalogHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	row, err := h.Service.Upcoming(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *CatalogHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	row, err := h.Service.TopRated(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// Search handles GET /api/search?q=<query>&type=movie|tv.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	mediaType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type")))

	results, err := h.Service.Search(r.Context(), query, mediaType)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}
