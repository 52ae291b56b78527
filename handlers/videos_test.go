package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"whisper/handlers"
	"whisper/models"
)

type fakeVideos struct {
	movie func(id int64) (models.VideoList, error)
	tv    func(id int64) (models.VideoList, error)
}

func (f fakeVideos) MovieVideos(_ context.Context, id int64) (models.VideoList, error) {
	return f.movie(id)
}

func (f fakeVideos) TVVideos(_ context.Context, id int64) (models.VideoList, error) {
	return f.tv(id)
}

func TestVideosMissingID(t *testing.T) {
	h := handlers.NewVideosHandler(fakeVideos{})

	for _, target := range []string{"/api/videos", "/api/videos?id=", "/api/videos?id=abc"} {
		rec := httptest.NewRecorder()
		h.Get(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode body: %v", target, err)
		}
		if body["error"] != "Missing ID" {
			t.Errorf("%s: error = %q, want Missing ID", target, body["error"])
		}
	}
}

func TestVideosUpstreamFailure(t *testing.T) {
	h := handlers.NewVideosHandler(fakeVideos{
		movie: func(int64) (models.VideoList, error) {
			return models.VideoList{}, errors.New("upstream down")
		},
	})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/videos?id=550", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Failed to fetch videos" {
		t.Fatalf("error = %q, want Failed to fetch videos", body["error"])
	}
}

func TestVideosRoutesByType(t *testing.T) {
	var movieCalled, tvCalled int64
	h := handlers.NewVideosHandler(fakeVideos{
		movie: func(id int64) (models.VideoList, error) {
			movieCalled = id
			return models.VideoList{ID: id}, nil
		},
		tv: func(id int64) (models.VideoList, error) {
			tvCalled = id
			return models.VideoList{ID: id}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/videos?id=1399&type=tv", nil))
	if rec.Code != http.StatusOK || tvCalled != 1399 {
		t.Fatalf("tv lookup: status=%d called=%d", rec.Code, tvCalled)
	}

	// Anything other than "tv" falls back to the movie lookup.
	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/videos?id=550&type=series", nil))
	if rec.Code != http.StatusOK || movieCalled != 550 {
		t.Fatalf("movie fallback: status=%d called=%d", rec.Code, movieCalled)
	}
}

func TestVideosSuccessBody(t *testing.T) {
	h := handlers.NewVideosHandler(fakeVideos{
		movie: func(id int64) (models.VideoList, error) {
			return models.VideoList{ID: id, Results: []models.Video{
				{ID: "v1", Key: "dQw4w9WgXcQ", Site: "YouTube", Type: "Trailer"},
			}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/videos?id=550", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body models.VideoList
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 1 || body.Results[0].Key != "dQw4w9WgXcQ" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
