package handlers

import "net/http"

// HealthHandler reports process liveness and whether a provider credential
// is configured.
type HealthHandler struct {
	TMDBConfigured func() bool
}

func NewHealthHandler(tmdbConfigured func() bool) *HealthHandler {
	return &HealthHandler{TMDBConfigured: tmdbConfigured}
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	configured := false
	if h.TMDBConfigured != nil {
		configured = h.TMDBConfigured()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"tmdbConfigured": configured,
	})
}
