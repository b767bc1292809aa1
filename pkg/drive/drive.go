// Package drive derives embeddable and downloadable URLs from Google Drive share links.
//
// Every function is pure and total: malformed input degrades to a best-effort
// result instead of an error.
package drive

import (
	"fmt"
	"strings"
)

// FileID extracts the Drive file ID from a share URL. The query parameter form
// (uc?id=...) takes precedence over the path form (/file/d/...). Returns "" when
// neither matches.
func FileID(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	if m := queryIDRegex.FindStringSubmatch(fileURL); len(m) == 2 {
		return m[1]
	}
	if m := pathIDRegex.FindStringSubmatch(fileURL); len(m) == 2 {
		return m[1]
	}
	return ""
}

// ThumbnailURL returns the Drive thumbnail service URL for fileURL at the given
// width. A size <= 0 uses DefaultThumbnailSize. If no file ID can be found the
// original URL is returned unchanged.
func ThumbnailURL(fileURL string, size int) string {
	id := FileID(fileURL)
	if id == "" {
		return fileURL
	}
	if size <= 0 {
		size = DefaultThumbnailSize
	}
	return fmt.Sprintf(ThumbnailURLTemplate, id, size)
}

// DownloadURL returns a direct download URL for fileURL. Without a file ID it
// falls back to rewriting export=view into export=download, and otherwise
// returns the input verbatim.
func DownloadURL(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	if id := FileID(fileURL); id != "" {
		return fmt.Sprintf(DownloadURLTemplate, id)
	}
	return strings.Replace(fileURL, "export=view", "export=download", 1)
}

// ViewURL synthesizes a view URL from a bare file ID.
func ViewURL(fileID string) string {
	if fileID == "" {
		return ""
	}
	return fmt.Sprintf(ViewURLTemplate, fileID)
}

// ShareURL returns the browser preview page for a file ID.
func ShareURL(fileID string) string {
	if fileID == "" {
		return ""
	}
	return fmt.Sprintf(ShareURLTemplate, fileID)
}

// ValidFileID reports whether id looks like a real Drive file ID.
func ValidFileID(id string) bool {
	return fileIDRegex.MatchString(id)
}
