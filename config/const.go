package config

import "strings"

// AppVersion is the version of the client.
var AppVersion string // Set with -ldflags during release builds

// AppName is the name of the client.
const AppName = "WallGallery"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Environment variables recognised by Load.
const (
	APIURLEnv    = "WALLGALLERY_API_URL"
	LegacyURLEnv = "REACT_APP_API_URL" // Same variable the web build reads
	PageSizeEnv  = "WALLGALLERY_PAGE_SIZE"
	RateLimitEnv = "WALLGALLERY_RATE_LIMIT"
)

// Defaults
const (
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultPageSize   = 50
	settingsFileName  = "config.json"
)
