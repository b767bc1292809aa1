package gallery

// AllCategory is the pseudo-category meaning no filter. It is always listed first.
const AllCategory = "All"

// DefaultPageSize is used when a query asks for a non-positive limit.
const DefaultPageSize = 50

// maxTags is how many description words become display tags.
const maxTags = 3

// Fallback messages when the server sends no detail.
const (
	likeFailedMsg     = "Failed to like wallpaper"
	downloadFailedMsg = "Failed to download wallpaper"
	loginFailedMsg    = "Login failed"
	registerFailedMsg = "Registration failed"
)

// DefaultCategories is served when the category listing is unavailable.
func DefaultCategories() []string {
	return []string{AllCategory, "Nature", "Abstract", "Cars", "Anime"}
}
