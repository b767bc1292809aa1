package gallery

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the wallpapers whose title, category or any tag contains query,
// compared case-folded. A blank query returns every item.
func Search(items []Wallpaper, query string) []Wallpaper {
	q := strings.TrimSpace(query)
	if q == "" {
		return append([]Wallpaper{}, items...)
	}

	fold := cases.Fold()
	needle := fold.String(q)
	contains := func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}

	out := []Wallpaper{}
	for _, w := range items {
		if contains(w.Title) || contains(w.Category) || containsAny(w.Tags, contains) {
			out = append(out, w)
		}
	}
	return out
}

func containsAny(tags []string, match func(string) bool) bool {
	for _, t := range tags {
		if match(t) {
			return true
		}
	}
	return false
}

// FindByID returns the wallpaper with the given id.
func FindByID(items []Wallpaper, id string) (Wallpaper, bool) {
	for _, w := range items {
		if w.ID == id {
			return w, true
		}
	}
	return Wallpaper{}, false
}

// IsAll reports whether category means no filter. Blank counts as All.
func IsAll(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || strings.EqualFold(c, AllCategory)
}
