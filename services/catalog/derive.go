package catalog

import (
	"fmt"
	"sort"

	"whisper/models"
)

const (
	heroLimit        = 10
	topCastLimit     = 10
	filmographyTop   = 18
	videoSiteYouTube = "YouTube"
)

// FormatRuntime converts total minutes to an "Hh Mm" label, or "Unknown"
// when the provider did not report a runtime.
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// SeasonLabel pluralizes the season count, or "Unknown" when absent.
func SeasonLabel(count int) string {
	switch {
	case count <= 0:
		return "Unknown"
	case count == 1:
		return "1 Season"
	default:
		return fmt.Sprintf("%d Seasons", count)
	}
}

// RatingLabel renders a 0.0-10.0 vote average with one decimal, or "N/A".
func RatingLabel(voteAverage float64) string {
	if voteAverage <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", voteAverage)
}

// HeroCandidates filters items eligible for the hero carousel: both poster
// and backdrop must be present. Original order is preserved and the result
// is capped at ten entries.
func HeroCandidates(items []models.MediaItem) []models.MediaItem {
	out := make([]models.MediaItem, 0, heroLimit)
	for _, item := range items {
		if item.PosterPath == "" || item.BackdropPath == "" {
			continue
		}
		out = append(out, item)
		if len(out) == heroLimit {
			break
		}
	}
	return out
}

// PickTrailer selects the primary playable video: YouTube-hosted only,
// preferring type "Trailer" over "Teaser" over anything else, first match
// wins. Returns nil when no YouTube item exists.
func PickTrailer(videos []models.Video) *models.Video {
	youtube := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.Site == videoSiteYouTube {
			youtube = append(youtube, v)
		}
	}
	if len(youtube) == 0 {
		return nil
	}
	for i := range youtube {
		if youtube[i].Type == "Trailer" {
			return &youtube[i]
		}
	}
	for i := range youtube {
		if youtube[i].Type == "Teaser" {
			return &youtube[i]
		}
	}
	return &youtube[0]
}

// TrailerGallery returns every playable YouTube trailer or teaser, in
// provider order.
func TrailerGallery(videos []models.Video) []models.Video {
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.Site == videoSiteYouTube && (v.Type == "Trailer" || v.Type == "Teaser") {
			out = append(out, v)
		}
	}
	return out
}

// TopCast takes the fixed-size billing-order prefix used on detail pages.
func TopCast(credits models.Credits) []models.CastMember {
	cast := credits.Cast
	if len(cast) > topCastLimit {
		cast = cast[:topCastLimit]
	}
	return cast
}

// BestKnownFor sorts a filmography by vote average descending and keeps the
// top entries for the "best known for" grid.
func BestKnownFor(cast []models.MediaItem) []models.MediaItem {
	out := make([]models.MediaItem, len(cast))
	copy(out, cast)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VoteAverage > out[j].VoteAverage
	})
	if len(out) > filmographyTop {
		out = out[:filmographyTop]
	}
	return out
}
