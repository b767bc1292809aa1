package api

// Endpoint paths, relative to the base URL.
const (
	registerPath         = "/users/"
	tokenPath            = "/token"
	currentUserPath      = "/users/me"
	wallpapersPath       = "/wallpapers/"
	categoryListPath     = "/wallpapers/category/"
	categoriesPath       = "/categories/"
	adminCategoriesPath  = "/admin/categories/"
	adminWallpapersPath  = "/admin/wallpapers/"
	adminUploadPath      = "/admin/upload/"
	likePathFormat       = "/wallpapers/%s/like"
	recordDownloadFormat = "/wallpapers/%s/download"
)

// Headers
const (
	RequestIDHeader  = "X-Request-ID"
	DefaultUserAgent = "wallgallery-client"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// ImageField is the multipart part name the upload endpoint expects the file under.
const ImageField = "image"

// statusErrorFormat is the message used when the server sends no detail.
const statusErrorFormat = "HTTP error! status: %d"
