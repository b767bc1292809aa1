package gallery

import (
	"context"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/stretchr/testify/mock"
)

// MockSource simulates the backend
type MockSource struct {
	mock.Mock
}

func raws(args mock.Arguments) []api.RawWallpaper {
	if v, ok := args.Get(0).([]api.RawWallpaper); ok {
		return v
	}
	return nil
}

func (m *MockSource) ListWallpapers(ctx context.Context, skip, limit int) ([]api.RawWallpaper, error) {
	args := m.Called(ctx, skip, limit)
	return raws(args), args.Error(1)
}

func (m *MockSource) ListWallpapersByCategory(ctx context.Context, category string, skip, limit int) ([]api.RawWallpaper, error) {
	args := m.Called(ctx, category, skip, limit)
	return raws(args), args.Error(1)
}

func (m *MockSource) ListCategories(ctx context.Context) ([]api.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]api.Category)
	return cats, args.Error(1)
}

func (m *MockSource) Like(ctx context.Context, id string) (api.StatusMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(api.StatusMessage), args.Error(1)
}

func (m *MockSource) RecordDownload(ctx context.Context, id string) (api.StatusMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(api.StatusMessage), args.Error(1)
}

func (m *MockSource) Login(ctx context.Context, email, password string) (api.Token, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(api.Token), args.Error(1)
}

func (m *MockSource) Register(ctx context.Context, email, password string) (*session.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*session.User)
	return u, args.Error(1)
}

func (m *MockSource) CurrentUser(ctx context.Context) (*session.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*session.User)
	return u, args.Error(1)
}

var _ Source = (*MockSource)(nil)

// page builds n raw wallpapers with ids prefix-0..prefix-(n-1).
func page(prefix string, n int) []api.RawWallpaper {
	out := make([]api.RawWallpaper, n)
	for i := range out {
		out[i] = api.RawWallpaper{
			ID:           prefix + "-" + string(rune('a'+i)),
			Title:        prefix,
			CategoryName: prefix,
			FileID:       api.NewOptString("F" + prefix),
		}
	}
	return out
}
