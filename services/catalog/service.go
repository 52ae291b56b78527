package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"

	"whisper/models"
	"whisper/services/tmdb"
)

// ErrNotFound is returned by detail lookups when the provider has no record
// for the requested id. Upstream failures collapse into the same signal on
// detail pages; list sections degrade to empty rows instead.
var ErrNotFound = errors.New("not found")

// Service aggregates provider calls into page-level payloads. Every page
// fans out its independent fetches concurrently and waits for all of them;
// results are slotted by position in the fan-out list, never by completion
// order. A failed fetch degrades its section rather than failing the page.
type Service struct {
	tmdb   *tmdb.Client
	logger *logrus.Logger
}

func NewService(client *tmdb.Client, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{tmdb: client, logger: logger}
}

// Images exposes the provider image resolver for handlers building URLs.
func (s *Service) Images() tmdb.ImageResolver { return s.tmdb.Images() }

// Row is one themed shelf of media items.
type Row struct {
	Title     string             `json:"title"`
	MediaType string             `json:"mediaType"`
	Items     []models.MediaItem `json:"items"`
	ViewAll   string             `json:"viewAllHref,omitempty"`
}

// HomePage is the landing payload: hero carousel candidates plus themed rows.
type HomePage struct {
	Hero []models.MediaItem `json:"hero"`
	Rows []Row              `json:"rows"`
}

// rowFetch pairs a shelf definition with the accessor that fills it.
type rowFetch struct {
	row   Row
	fetch func(context.Context) (models.MediaPage, error)
}

// fetchRows runs every fetch concurrently and fills each row in place. A
// fetch error is logged and leaves that row empty.
func (s *Service) fetchRows(ctx context.Context, fetches []rowFetch) []Row {
	rows := make([]Row, len(fetches))
	var wg conc.WaitGroup
	for i := range fetches {
		i := i
		wg.Go(func() {
			rows[i] = fetches[i].row
			page, err := fetches[i].fetch(ctx)
			if err != nil {
				s.logger.WithError(err).WithField("row", rows[i].Title).Warn("row fetch failed, rendering empty")
				rows[i].Items = []models.MediaItem{}
				return
			}
			rows[i].Items = page.Results
		})
	}
	wg.Wait()
	return rows
}

func (s *Service) trendingMovies(ctx context.Context) (models.MediaPage, error) {
	return s.tmdb.TrendingMovies(ctx, 0)
}

// Home aggregates the landing page: five independent fetches, hero carousel
// built from the trending movies row.
func (s *Service) Home(ctx context.Context) (HomePage, error) {
	rows := s.fetchRows(ctx, []rowFetch{
		{Row{Title: "Trending Movies", MediaType: models.MediaTypeMovie, ViewAll: "/trending"}, s.trendingMovies},
		{Row{Title: "Upcoming Hits", MediaType: models.MediaTypeMovie, ViewAll: "/upcoming"}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.UpcomingMovies(ctx, 0)
		}},
		{Row{Title: "Top Rated Cinema", MediaType: models.MediaTypeMovie, ViewAll: "/top-rated"}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TopRatedMovies(ctx, 0)
		}},
		{Row{Title: "Popular TV Shows", MediaType: models.MediaTypeTV, ViewAll: "/tv"}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.PopularTV(ctx, 0)
		}},
		{Row{Title: "Trending TV", MediaType: models.MediaTypeTV, ViewAll: "/tv"}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TrendingTV(ctx, 0)
		}},
	})

	return HomePage{Hero: HeroCandidates(rows[0].Items), Rows: rows}, nil
}

// Movies aggregates the movie landing page rows.
func (s *Service) Movies(ctx context.Context) ([]Row, error) {
	return s.fetchRows(ctx, []rowFetch{
		{Row{Title: "Trending Movies", MediaType: models.MediaTypeMovie}, s.trendingMovies},
		{Row{Title: "Upcoming", MediaType: models.MediaTypeMovie}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.UpcomingMovies(ctx, 0)
		}},
		{Row{Title: "Top Rated", MediaType: models.MediaTypeMovie}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TopRatedMovies(ctx, 0)
		}},
	}), nil
}

// TV aggregates the TV landing page rows.
func (s *Service) TV(ctx context.Context) ([]Row, error) {
	return s.fetchRows(ctx, []rowFetch{
		{Row{Title: "Popular TV", MediaType: models.MediaTypeTV}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.PopularTV(ctx, 0)
		}},
		{Row{Title: "Top Rated TV", MediaType: models.MediaTypeTV}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TopRatedTV(ctx, 0)
		}},
		{Row{Title: "Trending TV", MediaType: models.MediaTypeTV}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TrendingTV(ctx, 0)
		}},
	}), nil
}

// Trending aggregates the combined trending page.
func (s *Service) Trending(ctx context.Context) ([]Row, error) {
	return s.fetchRows(ctx, []rowFetch{
		{Row{Title: "Trending Movies", MediaType: models.MediaTypeMovie}, s.trendingMovies},
		{Row{Title: "Trending TV", MediaType: models.MediaTypeTV}, func(ctx context.Context) (models.MediaPage, error) {
			return s.tmdb.TrendingTV(ctx, 0)
		}},
	}), nil
}

// Upcoming returns the upcoming-movies listing, honoring an optional page.
func (s *Service) Upcoming(ctx context.Context, page int) (Row, error) {
	result, err := s.tmdb.UpcomingMovies(ctx, page)
	if err != nil {
		s.logger.WithError(err).Warn("upcoming fetch failed, rendering empty")
		return Row{Title: "Upcoming", MediaType: models.MediaTypeMovie, Items: []models.MediaItem{}}, nil
	}
	return Row{Title: "Upcoming", MediaType: models.MediaTypeMovie, Items: result.Results}, nil
}

// TopRated returns the top-rated-movies listing, honoring an optional page.
func (s *Service) TopRated(ctx context.Context, page int) (Row, error) {
	result, err := s.tmdb.TopRatedMovies(ctx, page)
	if err != nil {
		s.logger.WithError(err).Warn("top rated fetch failed, rendering empty")
		return Row{Title: "Top Rated", MediaType: models.MediaTypeMovie, Items: []models.MediaItem{}}, nil
	}
	return Row{Title: "Top Rated", MediaType: models.MediaTypeMovie, Items: result.Results}, nil
}

// MoviePage is the full movie detail payload with display labels derived
// server-side.
type MoviePage struct {
	Movie       models.MovieDetails `json:"movie"`
	Title       string              `json:"title"`
	Rating      string              `json:"rating"`
	Year        string              `json:"year"`
	Runtime     string              `json:"runtime"`
	PosterURL   string              `json:"posterUrl"`
	BackdropURL string              `json:"backdropUrl,omitempty"`
	Cast        []models.CastMember `json:"cast"`
	Similar     []models.MediaItem  `json:"similar"`
	Videos      []models.Video      `json:"videos"`
	Trailer     *models.Video       `json:"trailer,omitempty"`
}

// MoviePage fans out details, credits, similar titles and videos for one
// movie. A zero id in the details response means the provider has no such
// record; the caller renders a not-found state.
func (s *Service) MoviePage(ctx context.Context, id int64) (MoviePage, error) {
	var (
		details models.MovieDetails
		credits models.Credits
		similar models.MediaPage
		videos  models.VideoList

		detailsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { details, detailsErr = s.tmdb.MovieDetails(ctx, id) })
	wg.Go(func() {
		var err error
		if credits, err = s.tmdb.MovieCredits(ctx, id); err != nil {
			s.logger.WithError(err).Warn("movie credits fetch failed")
		}
	})
	wg.Go(func() {
		var err error
		if similar, err = s.tmdb.SimilarMovies(ctx, id); err != nil {
			s.logger.WithError(err).Warn("similar movies fetch failed")
		}
	})
	wg.Go(func() {
		var err error
		if videos, err = s.tmdb.MovieVideos(ctx, id); err != nil {
			s.logger.WithError(err).Warn("movie videos fetch failed")
		}
	})
	wg.Wait()

	if detailsErr != nil || details.ID == 0 {
		return MoviePage{}, ErrNotFound
	}

	images := s.tmdb.Images()
	poster := images.W500(details.PosterPath)
	if poster == "" {
		poster = tmdb.FallbackMoviePoster
	}
	backdropPath := details.BackdropPath
	if backdropPath == "" {
		backdropPath = details.PosterPath
	}

	return MoviePage{
		Movie:       details,
		Title:       details.DisplayTitle(),
		Rating:      RatingLabel(details.VoteAverage),
		Year:        details.Year(),
		Runtime:     FormatRuntime(details.Runtime),
		PosterURL:   poster,
		BackdropURL: images.Original(backdropPath),
		Cast:        TopCast(credits),
		Similar:     similar.Results,
		Videos:      videos.Results,
		Trailer:     PickTrailer(videos.Results),
	}, nil
}

// TVPage mirrors MoviePage for series, with a season label instead of a
// runtime.
type TVPage struct {
	Show        models.TVDetails    `json:"show"`
	Title       string              `json:"title"`
	Rating      string              `json:"rating"`
	Year        string              `json:"year"`
	Seasons     string              `json:"seasons"`
	PosterURL   string              `json:"posterUrl"`
	BackdropURL string              `json:"backdropUrl,omitempty"`
	Cast        []models.CastMember `json:"cast"`
	Similar     []models.MediaItem  `json:"similar"`
	Videos      []models.Video      `json:"videos"`
	Trailer     *models.Video       `json:"trailer,omitempty"`
}

func (s *Service) TVPage(ctx context.Context, id int64) (TVPage, error) {
	var (
		details models.TVDetails
		credits models.Credits
		similar models.MediaPage
		videos  models.VideoList

		detailsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { details, detailsErr = s.tmdb.TVDetails(ctx, id) })
	wg.Go(func() {
		var err error
		if credits, err = s.tmdb.TVCredits(ctx, id); err != nil {
			s.logger.WithError(err).Warn("tv credits fetch failed")
		}
	})
	wg.Go(func() {
		var err error
		if similar, err = s.tmdb.SimilarTV(ctx, id); err != nil {
			s.logger.WithError(err).Warn("similar tv fetch failed")
		}
	})
	wg.Go(func() {
		var err error
		if videos, err = s.tmdb.TVVideos(ctx, id); err != nil {
			s.logger.WithError(err).Warn("tv videos fetch failed")
		}
	})
	wg.Wait()

	if detailsErr != nil || details.ID == 0 {
		return TVPage{}, ErrNotFound
	}

	images := s.tmdb.Images()
	poster := images.W500(details.PosterPath)
	if poster == "" {
		poster = tmdb.FallbackMoviePoster
	}
	backdropPath := details.BackdropPath
	if backdropPath == "" {
		backdropPath = details.PosterPath
	}

	return TVPage{
		Show:        details,
		Title:       details.DisplayTitle(),
		Rating:      RatingLabel(details.VoteAverage),
		Year:        details.Year(),
		Seasons:     SeasonLabel(details.NumberOfSeasons),
		PosterURL:   poster,
		BackdropURL: images.Original(backdropPath),
		Cast:        TopCast(credits),
		Similar:     similar.Results,
		Videos:      videos.Results,
		Trailer:     PickTrailer(videos.Results),
	}, nil
}

// PersonPage is the person profile payload with the "best known for"
// filmography already sorted and truncated.
type PersonPage struct {
	Person       models.Person      `json:"person"`
	ProfileURL   string             `json:"profileUrl"`
	Biography    string             `json:"biography"`
	BestKnownFor []models.MediaItem `json:"bestKnownFor"`
}

func (s *Service) PersonPage(ctx context.Context, id int64) (PersonPage, error) {
	var (
		person  models.Person
		credits models.PersonCredits

		personErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { person, personErr = s.tmdb.PersonDetails(ctx, id) })
	wg.Go(func() {
		var err error
		if credits, err = s.tmdb.PersonMovieCredits(ctx, id); err != nil {
			s.logger.WithError(err).Warn("person credits fetch failed")
		}
	})
	wg.Wait()

	if personErr != nil || person.ID == 0 {
		return PersonPage{}, ErrNotFound
	}

	profile := s.tmdb.Images().W500(person.ProfilePath)
	if profile == "" {
		profile = tmdb.FallbackPersonImage
	}

	biography := person.Biography
	if strings.TrimSpace(biography) == "" {
		department := strings.ToLower(person.KnownForDepartment)
		if department == "" {
			department = "artist"
		}
		biography = person.Name + " is a renowned " + department + " in the cinematic world."
	}

	return PersonPage{
		Person:       person,
		ProfileURL:   profile,
		Biography:    biography,
		BestKnownFor: BestKnownFor(credits.Cast),
	}, nil
}

// SearchSuggestion is offered when a search yields no results.
type SearchSuggestion struct {
	Query     string `json:"query"`
	MediaType string `json:"mediaType"`
	Href      string `json:"href"`
}

// SearchResults carries search output for one media type.
type SearchResults struct {
	Query      string             `json:"query"`
	MediaType  string             `json:"mediaType"`
	Results    []models.MediaItem `json:"results"`
	Suggestion *SearchSuggestion  `json:"suggestion,omitempty"`
}

// Search forwards the query verbatim to the movie or TV search accessor.
// An empty query returns empty results without touching the provider; zero
// provider results come back with a suggested alternate query.
func (s *Service) Search(ctx context.Context, query, mediaType string) (SearchResults, error) {
	if mediaType != models.MediaTypeTV {
		mediaType = models.MediaTypeMovie
	}

	out := SearchResults{Query: query, MediaType: mediaType, Results: []models.MediaItem{}}
	if strings.TrimSpace(query) == "" {
		return out, nil
	}

	var (
		page models.MediaPage
		err  error
	)
	if mediaType == models.MediaTypeTV {
		page, err = s.tmdb.SearchTV(ctx, query)
	} else {
		page, err = s.tmdb.SearchMovies(ctx, query)
	}
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Warn("search failed, rendering empty")
	} else {
		out.Results = page.Results
	}

	if len(out.Results) == 0 {
		out.Suggestion = &SearchSuggestion{
			Query:     "Marvel",
			MediaType: models.MediaTypeMovie,
			Href:      "?q=Marvel&type=movie",
		}
	}

	return out, nil
}
