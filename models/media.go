package models

import (
	"fmt"
	"strings"
)

// Media type identifiers as used in routes, preference keys and TMDB paths.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// MediaItem is a single movie or TV entry as returned by TMDB list
// endpoints. Movies carry Title/ReleaseDate, TV shows carry Name/FirstAirDate;
// consumers must go through DisplayTitle and Year instead of reading the raw
// fields.
type MediaItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	MediaType    string  `json:"media_type,omitempty"`
}

// DisplayTitle prefers the movie title field, falls back to the TV name
// field, then to a literal placeholder.
func (m MediaItem) DisplayTitle() string {
	if strings.TrimSpace(m.Title) != "" {
		return m.Title
	}
	if strings.TrimSpace(m.Name) != "" {
		return m.Name
	}
	return "Untitled"
}

// Year extracts the 4-digit prefix of whichever date field is present.
func (m MediaItem) Year() string {
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	if len(date) < 4 {
		return "TBA"
	}
	return date[:4]
}

// MediaPage is a paginated TMDB list response.
type MediaPage struct {
	Page         int         `json:"page"`
	Results      []MediaItem `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full movie record from /movie/{id}.
type MovieDetails struct {
	MediaItem
	Genres  []Genre `json:"genres,omitempty"`
	Runtime int     `json:"runtime,omitempty"`
	Tagline string  `json:"tagline,omitempty"`
	Status  string  `json:"status,omitempty"`
}

// TVDetails is the full series record from /tv/{id}.
type TVDetails struct {
	MediaItem
	Genres           []Genre `json:"genres,omitempty"`
	NumberOfSeasons  int     `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int     `json:"number_of_episodes,omitempty"`
	Tagline          string  `json:"tagline,omitempty"`
	Status           string  `json:"status,omitempty"`
}

// CastMember is one cast credit. Order within Credits.Cast reflects billing
// order as returned by TMDB.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job,omitempty"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits holds cast and crew for one title.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew,omitempty"`
}

// Video is a single video asset. Only Site == "YouTube" entries are
// playable by the clients.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
	Site string `json:"site"`
	Type string `json:"type,omitempty"`
}

// VideoList is the /videos response for one title.
type VideoList struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Person is the full person record from /person/{id}.
type Person struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Biography          string `json:"biography,omitempty"`
	Birthday           string `json:"birthday,omitempty"`
	Deathday           string `json:"deathday,omitempty"`
	PlaceOfBirth       string `json:"place_of_birth,omitempty"`
	KnownForDepartment string `json:"known_for_department,omitempty"`
	ProfilePath        string `json:"profile_path,omitempty"`
}

// PersonCredits is the /person/{id}/movie_credits response.
type PersonCredits struct {
	ID   int64       `json:"id"`
	Cast []MediaItem `json:"cast"`
	Crew []MediaItem `json:"crew,omitempty"`
}

// PreferenceKey builds the durable key for one preference flag, matching the
// whisper_<type>_<id>_<kind> layout the clients have always used.
func PreferenceKey(mediaType string, id int64, kind string) string {
	return fmt.Sprintf("whisper_%s_%d_%s", mediaType, id, kind)
}
