package tmdb

import "strings"

// Fallback artwork used when the provider has no image for an item.
const (
	FallbackMoviePoster = "https://img.myloview.com/stickers/whitelaptop-screen-with-hd-video-technology-icon-isolated-on-grey-background-abstractcircle-random-dots-vector-illustration-400-176057922.jpg"
	FallbackPersonImage = "https://img.freepik.com/free-vector/isolated-young-handsome-man-different-poses-white-background-illustration_632498-855.jpg"
)

// ImageResolver composes absolute image URLs from the relative paths TMDB
// returns. An empty input path yields an empty URL.
type ImageResolver struct {
	base string
}

func NewImageResolver(baseURL string) ImageResolver {
	return ImageResolver{base: strings.TrimRight(baseURL, "/")}
}

func (r ImageResolver) sized(size, imagePath string) string {
	if strings.TrimSpace(imagePath) == "" {
		return ""
	}
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}
	return r.base + "/" + size + imagePath
}

// W500 returns a 500px wide URL for posters and profiles.
func (r ImageResolver) W500(imagePath string) string { return r.sized("w500", imagePath) }

// W342 returns a 342px wide URL.
func (r ImageResolver) W342(imagePath string) string { return r.sized("w342", imagePath) }

// W185 returns a 185px wide URL.
func (r ImageResolver) W185(imagePath string) string { return r.sized("w185", imagePath) }

// Original returns the original-quality URL, typically for backdrops.
func (r ImageResolver) Original(imagePath string) string { return r.sized("original", imagePath) }
