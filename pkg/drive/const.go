package drive

import "regexp"

// Google Drive URL templates
const (
	// ThumbnailURLTemplate takes the file ID and the requested width in pixels.
	ThumbnailURLTemplate = "https://drive.google.com/thumbnail?id=%s&sz=w%d"
	// DownloadURLTemplate serves the raw file. Large files answer with a confirmation page instead.
	DownloadURLTemplate = "https://drive.google.com/uc?export=download&id=%s"
	// ViewURLTemplate is the form the backend stored before it started returning full URLs.
	ViewURLTemplate = "https://drive.google.com/uc?export=view&id=%s"
	// ShareURLTemplate opens the Drive preview page in a browser.
	ShareURLTemplate = "https://drive.google.com/file/d/%s/view?usp=sharing"

	// DefaultThumbnailSize is the thumbnail width used by gallery cards.
	DefaultThumbnailSize = 800
)

var (
	// Matches ...uc?export=view&id=FILEID and any other id query parameter
	queryIDRegex = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	// Matches .../file/d/FILEID/...
	pathIDRegex = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	// Drive file IDs are long opaque tokens, 25+ characters in practice
	fileIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{25,}$`)
)
