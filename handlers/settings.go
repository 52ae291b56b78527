package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"whisper/config"
)

// SettingsHandler exposes the persisted configuration for the admin surface.
type SettingsHandler struct {
	Manager *config.Manager
}

func NewSettingsHandler(m *config.Manager) *SettingsHandler {
	return &SettingsHandler{Manager: m}
}

const redactedKey = "********"

// redact replaces the provider credential so it never leaves the server.
func redact(s config.Settings) config.Settings {
	if strings.TrimSpace(s.TMDB.APIKey) != "" {
		s.TMDB.APIKey = redactedKey
	}
	return s
}

// Get handles GET /api/settings. The provider credential is masked.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Manager.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, redact(s))
}

// Update handles PUT /api/settings. A masked or empty credential in the
// request keeps the stored one; changes take effect on the next restart.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, err := h.Manager.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var incoming config.Settings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	key := strings.TrimSpace(incoming.TMDB.APIKey)
	if key == "" || key == redactedKey {
		incoming.TMDB.APIKey = current.TMDB.APIKey
	}

	if err := h.Manager.Save(incoming); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, redact(incoming))
}
