package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server   ServerSettings   `json:"server"`
	TMDB     TMDBSettings     `json:"tmdb"`
	Database DatabaseSettings `json:"database"`
	Log      LogConfig        `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// TMDBSettings configures the upstream metadata provider. The API key is
// normally supplied through the MOVIE_DB_API_KEY environment variable rather
// than the settings file; a missing key degrades every upstream call to a
// provider-side auth failure handled by the catalog layer.
type TMDBSettings struct {
	APIKey          string `json:"apiKey"`
	Language        string `json:"language"`
	BaseURL         string `json:"baseUrl"`
	ImageBaseURL    string `json:"imageBaseUrl"`
	CacheTTLSeconds int    `json:"cacheTtlSeconds"`
}

type DatabaseSettings struct {
	Path string `json:"path"`
}

type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"maxSize"` // megabytes
	MaxBackups int    `json:"maxBackups"`
	MaxAge     int    `json:"maxAge"` // days
	Compress   bool   `json:"compress"`
}

const (
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL = "https://image.tmdb.org/t/p"

	// One hour; the only caching policy the system has.
	defaultCacheTTLSeconds = 3600
)

// DefaultSettings returns the configuration written on first run.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 8080},
		TMDB: TMDBSettings{
			Language:        "en-US",
			BaseURL:         defaultTMDBBaseURL,
			ImageBaseURL:    defaultTMDBImageBaseURL,
			CacheTTLSeconds: defaultCacheTTLSeconds,
		},
		Database: DatabaseSettings{Path: filepath.Join("cache", "whisper.db")},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     14,
		},
	}
}

// Manager loads and saves settings.json.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings.json from disk or creates defaults if missing, then
// applies environment overrides.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}

	var s Settings
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		s = DefaultSettings()
		if err := m.Save(s); err != nil {
			return Settings{}, err
		}
	} else {
		f, err := os.Open(m.path)
		if err != nil {
			return Settings{}, err
		}
		if err := json.NewDecoder(f).Decode(&s); err != nil {
			f.Close()
			return Settings{}, err
		}
		f.Close()
	}

	// Backfill defaults when the config predates newer settings.
	if strings.TrimSpace(s.TMDB.BaseURL) == "" {
		s.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if strings.TrimSpace(s.TMDB.ImageBaseURL) == "" {
		s.TMDB.ImageBaseURL = defaultTMDBImageBaseURL
	}
	if s.TMDB.CacheTTLSeconds <= 0 {
		s.TMDB.CacheTTLSeconds = defaultCacheTTLSeconds
	}
	if strings.TrimSpace(s.TMDB.Language) == "" {
		s.TMDB.Language = "en-US"
	}
	if strings.TrimSpace(s.Database.Path) == "" {
		s.Database.Path = filepath.Join("cache", "whisper.db")
	}
	if strings.TrimSpace(s.Log.Level) == "" {
		s.Log.Level = "info"
	}

	applyEnvOverrides(&s)

	return s, nil
}

// applyEnvOverrides layers process environment (and an optional .env file in
// the working directory) on top of the persisted settings. The TMDB
// credential in particular never needs to touch the settings file.
func applyEnvOverrides(s *Settings) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	if key := strings.TrimSpace(v.GetString("MOVIE_DB_API_KEY")); key != "" {
		s.TMDB.APIKey = key
	}
	if lang := strings.TrimSpace(v.GetString("WHISPER_LANGUAGE")); lang != "" {
		s.TMDB.Language = lang
	}
	if port := v.GetInt("WHISPER_PORT"); port > 0 {
		s.Server.Port = port
	}
	if dbPath := strings.TrimSpace(v.GetString("WHISPER_DB")); dbPath != "" {
		s.Database.Path = dbPath
	}
	if level := strings.TrimSpace(v.GetString("WHISPER_LOG_LEVEL")); level != "" {
		s.Log.Level = level
	}
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}
