package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m := NewManager(path)

	s, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", s.Server.Port)
	}
	if s.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("base url = %q", s.TMDB.BaseURL)
	}
	if s.TMDB.CacheTTLSeconds != 3600 {
		t.Errorf("cache ttl = %d, want 3600", s.TMDB.CacheTTLSeconds)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file should be written on first load: %v", err)
	}
}

func TestLoadBackfillsOlderConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"server":{"host":"0.0.0.0","port":9090}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", s.Server.Port)
	}
	if s.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p" {
		t.Errorf("image base url not backfilled: %q", s.TMDB.ImageBaseURL)
	}
	if s.TMDB.Language != "en-US" {
		t.Errorf("language not backfilled: %q", s.TMDB.Language)
	}
	if s.Log.Level != "info" {
		t.Errorf("log level not backfilled: %q", s.Log.Level)
	}
}

func TestEnvOverridesApply(t *testing.T) {
	t.Setenv("MOVIE_DB_API_KEY", "env-key")
	t.Setenv("WHISPER_PORT", "9999")
	t.Setenv("WHISPER_LANGUAGE", "fr-FR")

	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.TMDB.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", s.TMDB.APIKey)
	}
	if s.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", s.Server.Port)
	}
	if s.TMDB.Language != "fr-FR" {
		t.Errorf("language = %q, want fr-FR", s.TMDB.Language)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m := NewManager(path)

	s := DefaultSettings()
	s.TMDB.Language = "de-DE"
	s.Server.Port = 3000
	if err := m.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TMDB.Language != "de-DE" || loaded.Server.Port != 3000 {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}
