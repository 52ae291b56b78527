package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"whisper/handlers"
	"whisper/services/preferences"
)

type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool, error) {
	value, ok := m[key]
	return value, ok, nil
}

func (m mapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func newPreferencesHandler(t *testing.T) *handlers.PreferencesHandler {
	t.Helper()
	svc, err := preferences.NewService(mapStore{})
	if err != nil {
		t.Fatal(err)
	}
	return handlers.NewPreferencesHandler(svc)
}

func prefRequest(method, path, body string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return mux.SetURLVars(req, vars)
}

func TestPreferencesGetDefaults(t *testing.T) {
	h := newPreferencesHandler(t)

	rec := httptest.NewRecorder()
	h.Get(rec, prefRequest(http.MethodGet, "/api/preferences/movie/550", "",
		map[string]string{"mediaType": "movie", "id": "550"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var flags preferences.Flags
	if err := json.NewDecoder(rec.Body).Decode(&flags); err != nil {
		t.Fatal(err)
	}
	if flags.Liked || flags.Watchlist {
		t.Fatalf("expected default false flags, got %+v", flags)
	}
}

func TestPreferencesSetThenGet(t *testing.T) {
	h := newPreferencesHandler(t)
	vars := map[string]string{"mediaType": "movie", "id": "550"}

	rec := httptest.NewRecorder()
	h.Set(rec, prefRequest(http.MethodPut, "/api/preferences/movie/550",
		`{"kind":"liked","value":true}`, vars))

	if rec.Code != http.StatusOK {
		t.Fatalf("set status = %d, want 200", rec.Code)
	}
	var flags preferences.Flags
	if err := json.NewDecoder(rec.Body).Decode(&flags); err != nil {
		t.Fatal(err)
	}
	if !flags.Liked || flags.Watchlist {
		t.Fatalf("set response flags = %+v", flags)
	}

	rec = httptest.NewRecorder()
	h.Get(rec, prefRequest(http.MethodGet, "/api/preferences/movie/550", "", vars))
	if err := json.NewDecoder(rec.Body).Decode(&flags); err != nil {
		t.Fatal(err)
	}
	if !flags.Liked {
		t.Fatal("flag should survive across requests")
	}
}

func TestPreferencesToggle(t *testing.T) {
	h := newPreferencesHandler(t)
	vars := map[string]string{"mediaType": "tv", "id": "1399", "kind": "watchlist"}

	toggle := func() bool {
		rec := httptest.NewRecorder()
		h.Toggle(rec, prefRequest(http.MethodPost, "/api/preferences/tv/1399/watchlist/toggle", "", vars))
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle status = %d, want 200", rec.Code)
		}
		var body map[string]bool
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		return body["value"]
	}

	if !toggle() {
		t.Fatal("first toggle should yield true")
	}
	if toggle() {
		t.Fatal("second toggle should yield false")
	}
}

func TestPreferencesRejectsBadInput(t *testing.T) {
	h := newPreferencesHandler(t)

	cases := []struct {
		name string
		run  func(rec *httptest.ResponseRecorder)
	}{
		{"bad id", func(rec *httptest.ResponseRecorder) {
			h.Get(rec, prefRequest(http.MethodGet, "/api/preferences/movie/abc", "",
				map[string]string{"mediaType": "movie", "id": "abc"}))
		}},
		{"bad media type", func(rec *httptest.ResponseRecorder) {
			h.Get(rec, prefRequest(http.MethodGet, "/api/preferences/book/1", "",
				map[string]string{"mediaType": "book", "id": "1"}))
		}},
		{"bad kind", func(rec *httptest.ResponseRecorder) {
			h.Set(rec, prefRequest(http.MethodPut, "/api/preferences/movie/1",
				`{"kind":"starred","value":true}`,
				map[string]string{"mediaType": "movie", "id": "1"}))
		}},
		{"malformed body", func(rec *httptest.ResponseRecorder) {
			h.Set(rec, prefRequest(http.MethodPut, "/api/preferences/movie/1",
				`{not json`, map[string]string{"mediaType": "movie", "id": "1"}))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.run(rec)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
