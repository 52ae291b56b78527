package tmdb

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints maps logical resource requests to fully-qualified provider URLs
// with the credential embedded as a query parameter. Pure and deterministic:
// a malformed id simply produces a URL the provider will reject.
type Endpoints struct {
	BaseURL  string
	APIKey   string
	Language string
}

func (e Endpoints) build(path string) string {
	base := strings.TrimRight(e.BaseURL, "/")
	u := fmt.Sprintf("%s%s?api_key=%s", base, path, url.QueryEscape(e.APIKey))
	if lang := strings.TrimSpace(e.Language); lang != "" {
		u += "&language=" + url.QueryEscape(lang)
	}
	return u
}

// Movie endpoints.

func (e Endpoints) TrendingMovies() string { return e.build("/trending/movie/day") }
func (e Endpoints) UpcomingMovies() string { return e.build("/movie/upcoming") }
func (e Endpoints) TopRatedMovies() string { return e.build("/movie/top_rated") }
func (e Endpoints) SearchMovies() string   { return e.build("/search/movie") }

func (e Endpoints) MovieDetails(id int64) string { return e.build(fmt.Sprintf("/movie/%d", id)) }
func (e Endpoints) MovieCredits(id int64) string {
	return e.build(fmt.Sprintf("/movie/%d/credits", id))
}
func (e Endpoints) SimilarMovies(id int64) string {
	return e.build(fmt.Sprintf("/movie/%d/similar", id))
}
func (e Endpoints) MovieVideos(id int64) string {
	return e.build(fmt.Sprintf("/movie/%d/videos", id))
}

// TV endpoints.

func (e Endpoints) TrendingTV() string { return e.build("/trending/tv/day") }
func (e Endpoints) PopularTV() string  { return e.build("/tv/popular") }
func (e Endpoints) TopRatedTV() string { return e.build("/tv/top_rated") }
func (e Endpoints) SearchTV() string   { return e.build("/search/tv") }

func (e Endpoints) TVDetails(id int64) string { return e.build(fmt.Sprintf("/tv/%d", id)) }
func (e Endpoints) TVCredits(id int64) string { return e.build(fmt.Sprintf("/tv/%d/credits", id)) }
func (e Endpoints) SimilarTV(id int64) string { return e.build(fmt.Sprintf("/tv/%d/similar", id)) }
func (e Endpoints) TVVideos(id int64) string  { return e.build(fmt.Sprintf("/tv/%d/videos", id)) }

// Person endpoints.

func (e Endpoints) PersonDetails(id int64) string { return e.build(fmt.Sprintf("/person/%d", id)) }
func (e Endpoints) PersonMovieCredits(id int64) string {
	return e.build(fmt.Sprintf("/person/%d/movie_credits", id))
}
