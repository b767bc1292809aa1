package gallery

import (
	"context"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/pkg/session"
)

// WallpaperSource lists wallpapers. *api.Client satisfies it.
type WallpaperSource interface {
	ListWallpapers(ctx context.Context, skip, limit int) ([]api.RawWallpaper, error)
	ListWallpapersByCategory(ctx context.Context, category string, skip, limit int) ([]api.RawWallpaper, error)
}

// CategorySource lists categories.
type CategorySource interface {
	ListCategories(ctx context.Context) ([]api.Category, error)
}

// ActionSource performs the per-wallpaper actions.
type ActionSource interface {
	Like(ctx context.Context, id string) (api.StatusMessage, error)
	RecordDownload(ctx context.Context, id string) (api.StatusMessage, error)
}

// AuthSource performs the account calls.
type AuthSource interface {
	Login(ctx context.Context, email, password string) (api.Token, error)
	Register(ctx context.Context, email, password string) (*session.User, error)
	CurrentUser(ctx context.Context) (*session.User, error)
}

// Source is everything the gallery needs from the backend.
type Source interface {
	WallpaperSource
	CategorySource
	ActionSource
	AuthSource
}

var _ Source = (*api.Client)(nil)
