package preferences

import (
	"errors"
	"strconv"

	"whisper/models"
)

// Flag kinds a title can be annotated with.
const (
	KindLiked     = "liked"
	KindWatchlist = "watchlist"
)

var (
	ErrStoreRequired = errors.New("preference store not provided")
	ErrIDRequired    = errors.New("id is required")
	ErrInvalidType   = errors.New("media type must be movie or tv")
	ErrInvalidKind   = errors.New("kind must be liked or watchlist")
)

// Service manages per-title boolean preference flags. Flags default to
// false when never set and never expire.
type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store}, nil
}

func validate(mediaType string, id int64, kind string) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		return ErrInvalidType
	}
	if kind != KindLiked && kind != KindWatchlist {
		return ErrInvalidKind
	}
	return nil
}

// Get reads one flag, defaulting to false when absent.
func (s *Service) Get(mediaType string, id int64, kind string) (bool, error) {
	if err := validate(mediaType, id, kind); err != nil {
		return false, err
	}
	value, ok, err := s.store.Get(models.PreferenceKey(mediaType, id, kind))
	if err != nil || !ok {
		return false, err
	}
	return value == "true", nil
}

// Set writes one flag immediately.
func (s *Service) Set(mediaType string, id int64, kind string, value bool) error {
	if err := validate(mediaType, id, kind); err != nil {
		return err
	}
	return s.store.Set(models.PreferenceKey(mediaType, id, kind), strconv.FormatBool(value))
}

// Toggle flips one flag and returns the new value.
func (s *Service) Toggle(mediaType string, id int64, kind string) (bool, error) {
	current, err := s.Get(mediaType, id, kind)
	if err != nil {
		return false, err
	}
	next := !current
	if err := s.Set(mediaType, id, kind, next); err != nil {
		return false, err
	}
	return next, nil
}

// Flags bundles both flags for one title.
type Flags struct {
	Liked     bool `json:"liked"`
	Watchlist bool `json:"watchlist"`
}

// GetAll reads both flags for one title.
func (s *Service) GetAll(mediaType string, id int64) (Flags, error) {
	liked, err := s.Get(mediaType, id, KindLiked)
	if err != nil {
		return Flags{}, err
	}
	watchlist, err := s.Get(mediaType, id, KindWatchlist)
	if err != nil {
		return Flags{}, err
	}
	return Flags{Liked: liked, Watchlist: watchlist}, nil
}
