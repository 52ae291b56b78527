package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"whisper/models"
)

type videoFetcher interface {
	MovieVideos(ctx context.Context, id int64) (models.VideoList, error)
	TVVideos(ctx context.Context, id int64) (models.VideoList, error)
}

// VideosHandler proxies the browser-initiated trailer lookup so the provider
// credential never reaches the client.
type VideosHandler struct {
	Videos videoFetcher
}

func NewVideosHandler(videos videoFetcher) *VideosHandler {
	return &VideosHandler{Videos: videos}
}

// Get handles GET /api/videos?id=<id>&type=movie|tv. Any type other than
// "tv" is treated as "movie", matching the historical behavior.
func (h *VideosHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawID := strings.TrimSpace(r.URL.Query().Get("id"))
	if rawID == "" {
		writeError(w, http.StatusBadRequest, "Missing ID")
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing ID")
		return
	}

	var videos models.VideoList
	if r.URL.Query().Get("type") == models.MediaTypeTV {
		videos, err = h.Videos.TVVideos(r.Context(), id)
	} else {
		videos, err = h.Videos.MovieVideos(r.Context(), id)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch videos")
		return
	}

	writeJSON(w, http.StatusOK, videos)
}
