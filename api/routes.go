package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"whisper/handlers"
)

// corsMiddleware handles CORS for API routes
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware tags each request with an id and logs method, path,
// status and duration.
func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			logger.WithFields(logrus.Fields{
				"requestId":   requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("request completed")
		})
	}
}

// Register mounts API endpoints onto the provided router.
func Register(
	r *mux.Router,
	catalogHandler *handlers.CatalogHandler,
	detailsHandler *handlers.DetailsHandler,
	videosHandler *handlers.VideosHandler,
	preferencesHandler *handlers.PreferencesHandler,
	settingsHandler *handlers.SettingsHandler,
	healthHandler *handlers.HealthHandler,
	logger *logrus.Logger,
) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)
	api.Use(loggingMiddleware(logger))

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	// Aggregated pages
	api.HandleFunc("/home", catalogHandler.Home).Methods(http.MethodGet)
	api.HandleFunc("/movies", catalogHandler.Movies).Methods(http.MethodGet)
	api.HandleFunc("/tv", catalogHandler.TV).Methods(http.MethodGet)
	api.HandleFunc("/trending", catalogHandler.Trending).Methods(http.MethodGet)
	api.HandleFunc("/upcoming", catalogHandler.Upcoming).Methods(http.MethodGet)
	api.HandleFunc("/top-rated", catalogHandler.TopRated).Methods(http.MethodGet)
	api.HandleFunc("/search", catalogHandler.Search).Methods(http.MethodGet)

	// Detail pages
	api.HandleFunc("/movie/{id}", detailsHandler.Movie).Methods(http.MethodGet)
	api.HandleFunc("/tv/{id}", detailsHandler.TV).Methods(http.MethodGet)
	api.HandleFunc("/person/{id}", detailsHandler.Person).Methods(http.MethodGet)

	// Video proxy, keeps the provider credential off the client
	api.HandleFunc("/videos", videosHandler.Get).Methods(http.MethodGet)

	// Preference flags
	api.HandleFunc("/preferences/{mediaType}/{id}", preferencesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{mediaType}/{id}", preferencesHandler.Set).Methods(http.MethodPut)
	api.HandleFunc("/preferences/{mediaType}/{id}/{kind}/toggle", preferencesHandler.Toggle).Methods(http.MethodPost)

	// Persisted configuration, credential masked
	api.HandleFunc("/settings", settingsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/settings", settingsHandler.Update).Methods(http.MethodPut)
}
