package tmdb

import (
	"strings"
	"testing"
)

func TestEndpointsEmbedCredential(t *testing.T) {
	e := Endpoints{BaseURL: "https://api.example.test/3", APIKey: "secret", Language: "en-US"}

	urls := map[string]string{
		"trending movies": e.TrendingMovies(),
		"upcoming movies": e.UpcomingMovies(),
		"search tv":       e.SearchTV(),
		"movie details":   e.MovieDetails(550),
		"tv videos":       e.TVVideos(1399),
		"person credits":  e.PersonMovieCredits(287),
	}

	for name, u := range urls {
		if !strings.Contains(u, "api_key=secret") {
			t.Errorf("%s: credential missing from %s", name, u)
		}
		if !strings.HasPrefix(u, "https://api.example.test/3/") {
			t.Errorf("%s: unexpected base in %s", name, u)
		}
	}
}

func TestEndpointPaths(t *testing.T) {
	e := Endpoints{BaseURL: "https://api.example.test/3", APIKey: "k"}

	cases := []struct {
		got  string
		want string
	}{
		{e.TrendingMovies(), "/3/trending/movie/day?"},
		{e.TrendingTV(), "/3/trending/tv/day?"},
		{e.UpcomingMovies(), "/3/movie/upcoming?"},
		{e.TopRatedMovies(), "/3/movie/top_rated?"},
		{e.PopularTV(), "/3/tv/popular?"},
		{e.TopRatedTV(), "/3/tv/top_rated?"},
		{e.MovieDetails(550), "/3/movie/550?"},
		{e.MovieCredits(550), "/3/movie/550/credits?"},
		{e.SimilarMovies(550), "/3/movie/550/similar?"},
		{e.MovieVideos(550), "/3/movie/550/videos?"},
		{e.TVDetails(1399), "/3/tv/1399?"},
		{e.TVCredits(1399), "/3/tv/1399/credits?"},
		{e.SimilarTV(1399), "/3/tv/1399/similar?"},
		{e.TVVideos(1399), "/3/tv/1399/videos?"},
		{e.PersonDetails(287), "/3/person/287?"},
		{e.PersonMovieCredits(287), "/3/person/287/movie_credits?"},
	}

	for _, tc := range cases {
		if !strings.Contains(tc.got, tc.want) {
			t.Errorf("expected %s to contain %s", tc.got, tc.want)
		}
	}
}

func TestEndpointsOmitEmptyLanguage(t *testing.T) {
	e := Endpoints{BaseURL: "https://api.example.test/3", APIKey: "k"}
	if strings.Contains(e.TrendingMovies(), "language=") {
		t.Fatalf("language should be omitted when unset: %s", e.TrendingMovies())
	}

	e.Language = "pt-BR"
	if !strings.Contains(e.TrendingMovies(), "language=pt-BR") {
		t.Fatalf("language missing: %s", e.TrendingMovies())
	}
}
