package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"whisper/services/preferences"
)

type preferencesService interface {
	GetAll(mediaType string, id int64) (preferences.Flags, error)
	Set(mediaType string, id int64, kind string, value bool) error
	Toggle(mediaType string, id int64, kind string) (bool, error)
}

var _ preferencesService = (*preferences.Service)(nil)

// PreferencesHandler exposes the per-title liked/watchlist flags.
type PreferencesHandler struct {
	Service preferencesService
}

func NewPreferencesHandler(s preferencesService) *PreferencesHandler {
	return &PreferencesHandler{Service: s}
}

func prefVars(r *http.Request) (string, int64, error) {
	vars := mux.Vars(r)
	mediaType := strings.ToLower(vars["mediaType"])
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		return "", 0, errors.New("invalid id")
	}
	return mediaType, id, nil
}

// Get handles GET /api/preferences/{mediaType}/{id} and returns both flags,
// defaulting to false when never set.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	mediaType, id, err := prefVars(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	flags, err := h.Service.GetAll(mediaType, id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

type setFlagRequest struct {
	Kind  string `json:"kind"`
	Value bool   `json:"value"`
}

// Set handles PUT /api/preferences/{mediaType}/{id} with a {kind, value}
// body. The write is synchronous: a 200 response means the flag is durable.
func (h *PreferencesHandler) Set(w http.ResponseWriter, r *http.Request) {
	mediaType, id, err := prefVars(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req setFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.Service.Set(mediaType, id, req.Kind, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flags, err := h.Service.GetAll(mediaType, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

// Toggle handles POST /api/preferences/{mediaType}/{id}/{kind}/toggle.
func (h *PreferencesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	mediaType, id, err := prefVars(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	kind := strings.ToLower(mux.Vars(r)["kind"])
	value, err := h.Service.Toggle(mediaType, id, kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"value": value})
}
