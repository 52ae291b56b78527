package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"whisper/config"
	"whisper/models"
)

// Client is the single gateway to the metadata provider. Responses are held
// in an in-process cache keyed by request URL for the configured revalidation
// window; within that window repeated calls never touch the network. There is
// no request coalescing and no retry: N concurrent identical calls outside
// the window issue N upstream requests, and a failed call fails once.
type Client struct {
	endpoints Endpoints
	images    ImageResolver
	httpc     *http.Client
	cache     *gocache.Cache
	logger    *logrus.Logger
}

func NewClient(cfg config.TMDBSettings, httpc *http.Client, logger *logrus.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = logrus.New()
	}
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{
		endpoints: Endpoints{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, Language: cfg.Language},
		images:    NewImageResolver(cfg.ImageBaseURL),
		httpc:     httpc,
		cache:     gocache.New(ttl, 10*time.Minute),
		logger:    logger,
	}
}

// Images exposes the image URL resolver bound to this client's provider.
func (c *Client) Images() ImageResolver { return c.images }

// IsConfigured reports whether a provider credential is present. An
// unconfigured client still issues requests; the provider rejects them and
// the error surfaces through the usual path.
func (c *Client) IsConfigured() bool { return c != nil && c.endpoints.APIKey != "" }

// get performs the request, serving from the revalidation cache when the URL
// was fetched within the TTL window. Every failure mode (network, non-2xx,
// malformed body) comes back as an error with the zero value left in v.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v any) error {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = endpoint + "&" + params.Encode()
	}

	if raw, ok := c.cache.Get(requestURL); ok {
		return json.Unmarshal(raw.([]byte), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("tmdb request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"path":   req.URL.Path,
		}).Warn("tmdb request rejected")
		return fmt.Errorf("tmdb request failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		c.logger.WithError(err).Warn("tmdb response decode failed")
		return err
	}

	c.cache.SetDefault(requestURL, body)
	return nil
}

func pageParams(page int) url.Values {
	if page <= 0 {
		return nil
	}
	return url.Values{"page": []string{strconv.Itoa(page)}}
}

// Movie accessors.

func (c *Client) TrendingMovies(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.TrendingMovies(), pageParams(page), &out)
	return out, err
}

func (c *Client) UpcomingMovies(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.UpcomingMovies(), pageParams(page), &out)
	return out, err
}

func (c *Client) TopRatedMovies(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.TopRatedMovies(), pageParams(page), &out)
	return out, err
}

// SearchMovies forwards the free-text query verbatim.
func (c *Client) SearchMovies(ctx context.Context, query string) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.SearchMovies(), url.Values{"query": []string{query}}, &out)
	return out, err
}

func (c *Client) MovieDetails(ctx context.Context, id int64) (models.MovieDetails, error) {
	var out models.MovieDetails
	err := c.get(ctx, c.endpoints.MovieDetails(id), nil, &out)
	return out, err
}

func (c *Client) MovieCredits(ctx context.Context, id int64) (models.Credits, error) {
	var out models.Credits
	err := c.get(ctx, c.endpoints.MovieCredits(id), nil, &out)
	return out, err
}

func (c *Client) SimilarMovies(ctx context.Context, id int64) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.SimilarMovies(id), nil, &out)
	return out, err
}

func (c *Client) MovieVideos(ctx context.Context, id int64) (models.VideoList, error) {
	var out models.VideoList
	err := c.get(ctx, c.endpoints.MovieVideos(id), nil, &out)
	return out, err
}

// TV accessors.

func (c *Client) TrendingTV(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.TrendingTV(), pageParams(page), &out)
	return out, err
}

func (c *Client) PopularTV(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.PopularTV(), pageParams(page), &out)
	return out, err
}

func (c *Client) TopRatedTV(ctx context.Context, page int) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.TopRatedTV(), pageParams(page), &out)
	return out, err
}

func (c *Client) SearchTV(ctx context.Context, query string) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.SearchTV(), url.Values{"query": []string{query}}, &out)
	return out, err
}

func (c *Client) TVDetails(ctx context.Context, id int64) (models.TVDetails, error) {
	var out models.TVDetails
	err := c.get(ctx, c.endpoints.TVDetails(id), nil, &out)
	return out, err
}

func (c *Client) TVCredits(ctx context.Context, id int64) (models.Credits, error) {
	var out models.Credits
	err := c.get(ctx, c.endpoints.TVCredits(id), nil, &out)
	return out, err
}

func (c *Client) SimilarTV(ctx context.Context, id int64) (models.MediaPage, error) {
	var out models.MediaPage
	err := c.get(ctx, c.endpoints.SimilarTV(id), nil, &out)
	return out, err
}

func (c *Client) TVVideos(ctx context.Context, id int64) (models.VideoList, error) {
	var out models.VideoList
	err := c.get(ctx, c.endpoints.TVVideos(id), nil, &out)
	return out, err
}

// Person accessors.

func (c *Client) PersonDetails(ctx context.Context, id int64) (models.Person, error) {
	var out models.Person
	err := c.get(ctx, c.endpoints.PersonDetails(id), nil, &out)
	return out, err
}

func (c *Client) PersonMovieCredits(ctx context.Context, id int64) (models.PersonCredits, error) {
	var out models.PersonCredits
	err := c.get(ctx, c.endpoints.PersonMovieCredits(id), nil, &out)
	return out, err
}
