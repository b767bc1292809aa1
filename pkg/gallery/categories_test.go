package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryQuery(t *testing.T) {
	tests := []struct {
		name    string
		cats    []api.Category
		err     error
		want    []string
		wantErr string
	}{
		{
			name: "Server listing",
			cats: []api.Category{{ID: "1", Name: "Nature"}, {ID: "2", Name: "Cars"}},
			want: []string{"All", "Nature", "Cars"},
		},
		{
			name: "Server All, blanks and repeats dropped",
			cats: []api.Category{{Name: "all"}, {Name: "Nature"}, {Name: " "}, {Name: "nature"}, {Name: "Space"}},
			want: []string{"All", "Nature", "Space"},
		},
		{
			name: "Empty listing serves defaults",
			cats: []api.Category{},
			want: DefaultCategories(),
		},
		{
			name:    "Failure serves defaults",
			err:     errors.New("HTTP error! status: 500"),
			want:    DefaultCategories(),
			wantErr: "HTTP error! status: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockSource)
			m.On("ListCategories", mock.Anything).Return(tt.cats, tt.err).Once()

			q := NewCategoryQuery(m)
			assert.Equal(t, []string{"All"}, q.Snapshot().Items)

			s := q.Load(context.Background())
			assert.False(t, s.Loading)
			assert.Equal(t, tt.want, s.Items)
			assert.Equal(t, tt.wantErr, s.Err)
			assert.Equal(t, s, q.Snapshot())
		})
	}
}

func TestCategoryQueryRecovers(t *testing.T) {
	m := new(MockSource)
	m.On("ListCategories", mock.Anything).Return(nil, errors.New("down")).Once()
	m.On("ListCategories", mock.Anything).Return([]api.Category{{Name: "Anime"}}, nil).Once()

	q := NewCategoryQuery(m)
	assert.Equal(t, "down", q.Load(context.Background()).Err)

	s := q.Load(context.Background())
	assert.Empty(t, s.Err)
	assert.Equal(t, []string{"All", "Anime"}, s.Items)
}
