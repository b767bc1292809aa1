// Package gallery turns backend payloads into display-ready wallpapers and keeps
// per-query fetch state for a presentation layer.
package gallery

import (
	"strings"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/pkg/drive"
)

// Wallpaper is a display-ready wallpaper. It is rebuilt from the wire form on every fetch.
type Wallpaper struct {
	ID            string
	Title         string
	Category      string
	Description   string
	Tags          []string
	ImageURL      string // Drive thumbnail
	DownloadURL   string // Direct Drive download
	LikesCount    int
	DownloadCount int
}

// ResolveFileURL picks the Drive URL of a raw wallpaper: the explicit URL when present,
// otherwise one synthesized from a bare file id, otherwise "".
func ResolveFileURL(raw api.RawWallpaper) string {
	if u, ok := raw.FileURL.Get(); ok && u != "" {
		return u
	}
	if id, ok := raw.FileID.Get(); ok && id != "" {
		return drive.ViewURL(id)
	}
	return ""
}

// FromRaw converts one wire wallpaper.
func FromRaw(raw api.RawWallpaper) Wallpaper {
	fileURL := ResolveFileURL(raw)
	desc := raw.Description.Or("")

	return Wallpaper{
		ID:            raw.ID,
		Title:         raw.Title,
		Category:      raw.CategoryName,
		Description:   desc,
		Tags:          tagsFrom(desc),
		ImageURL:      drive.ThumbnailURL(fileURL, drive.DefaultThumbnailSize),
		DownloadURL:   drive.DownloadURL(fileURL),
		LikesCount:    max(raw.LikesCount, 0),
		DownloadCount: max(raw.DownloadCount, 0),
	}
}

// FromRawList converts a listing, preserving order. The result is never nil.
func FromRawList(raws []api.RawWallpaper) []Wallpaper {
	out := make([]Wallpaper, 0, len(raws))
	for _, r := range raws {
		out = append(out, FromRaw(r))
	}
	return out
}

// tagsFrom takes the first few words of the description.
// TODO: switch to server-side tags once the wallpaper payload carries them.
func tagsFrom(desc string) []string {
	words := strings.Fields(desc)
	if len(words) > maxTags {
		words = words[:maxTags]
	}
	return append([]string{}, words...)
}
