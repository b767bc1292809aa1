package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestActionsLike(t *testing.T) {
	tests := []struct {
		name string
		res  api.StatusMessage
		err  error
		want ActionResult
	}{
		{
			name: "Liked",
			res:  api.StatusMessage{Status: "success", Message: "Wallpaper liked"},
			want: ActionResult{Success: true, Message: "Wallpaper liked"},
		},
		{
			name: "Server detail",
			err:  &api.Error{Status: 401, Message: "Not authenticated", Detail: "Not authenticated"},
			want: ActionResult{Error: "Not authenticated"},
		},
		{
			name: "No detail",
			err:  &api.Error{Status: 500, Message: "HTTP error! status: 500"},
			want: ActionResult{Error: "Failed to like wallpaper"},
		},
		{
			name: "Network failure",
			err:  &api.NetworkError{Method: "POST", URL: "http://x", Err: errors.New("refused")},
			want: ActionResult{Error: "Failed to like wallpaper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockSource)
			m.On("Like", mock.Anything, "w1").Return(tt.res, tt.err).Once()

			a := NewActions(m)
			got := a.Like(context.Background(), "w1")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Error, a.Err())
			assert.False(t, a.Loading())
		})
	}
}

func TestActionsDownload(t *testing.T) {
	m := new(MockSource)
	m.On("RecordDownload", mock.Anything, "w1").Return(api.StatusMessage{Message: "Download count incremented"}, nil).Once()
	m.On("RecordDownload", mock.Anything, "gone").
		Return(api.StatusMessage{}, &api.Error{Status: 404, Message: "Wallpaper not found", Detail: "Wallpaper not found"}).Once()
	m.On("RecordDownload", mock.Anything, "bad").
		Return(api.StatusMessage{}, errors.New("boom")).Once()

	a := NewActions(m)
	ctx := context.Background()

	assert.Equal(t, ActionResult{Success: true}, a.Download(ctx, "w1"))
	assert.Empty(t, a.Err())

	assert.Equal(t, ActionResult{Error: "Wallpaper not found"}, a.Download(ctx, "gone"))
	assert.Equal(t, "Wallpaper not found", a.Err())

	assert.Equal(t, ActionResult{Error: "Failed to download wallpaper"}, a.Download(ctx, "bad"))
	m.AssertExpectations(t)
}

func TestActionsErrorClearedByNextAction(t *testing.T) {
	m := new(MockSource)
	m.On("Like", mock.Anything, "w1").Return(api.StatusMessage{}, errors.New("boom")).Once()
	m.On("Like", mock.Anything, "w1").Return(api.StatusMessage{Message: "Wallpaper liked"}, nil).Once()

	a := NewActions(m)
	a.Like(context.Background(), "w1")
	assert.NotEmpty(t, a.Err())

	a.Like(context.Background(), "w1")
	assert.Empty(t, a.Err())
}
