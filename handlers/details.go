package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"whisper/services/catalog"
)

type detailsService interface {
	MoviePage(ctx context.Context, id int64) (catalog.MoviePage, error)
	TVPage(ctx context.Context, id int64) (catalog.TVPage, error)
	PersonPage(ctx context.Context, id int64) (catalog.PersonPage, error)
}

var _ detailsService = (*catalog.Service)(nil)

// DetailsHandler serves the movie, TV and person detail pages.
type DetailsHandler struct {
	Service detailsService
}

func NewDetailsHandler(s detailsService) *DetailsHandler {
	return &DetailsHandler{Service: s}
}

// notFoundBody is the degraded state a client renders when the provider has
// no record for the requested id; the home link is the recovery action.
type notFoundBody struct {
	Error string `json:"error"`
	Home  string `json:"home"`
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *DetailsHandler) Movie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	page, err := h.Service.MoviePage(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundBody{Error: "Movie Not Found", Home: "/"})
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *DetailsHandler) TV(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	page, err := h.Service.TVPage(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundBody{Error: "Show Not Found", Home: "/"})
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *DetailsHandler) Person(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	page, err := h.Service.PersonPage(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundBody{Error: "Person Not Found", Home: "/"})
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}
