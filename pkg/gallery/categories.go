package gallery

import (
	"context"
	"strings"
	"sync"

	"github.com/dixieflatline76/wallgallery/util/log"
)

// CategoryState is a snapshot of the category listing.
type CategoryState struct {
	Loading bool
	Err     string
	Items   []string // Always starts with AllCategory
}

// CategoryQuery keeps the category names offered for filtering.
type CategoryQuery struct {
	src CategorySource

	mu    sync.Mutex
	state CategoryState
}

// NewCategoryQuery creates a query listing only AllCategory until loaded.
func NewCategoryQuery(src CategorySource) *CategoryQuery {
	return &CategoryQuery{
		src:   src,
		state: CategoryState{Items: []string{AllCategory}},
	}
}

// Load fetches the listing. It never fails: on error or an empty listing the defaults are served.
func (q *CategoryQuery) Load(ctx context.Context) CategoryState {
	q.mu.Lock()
	q.state.Loading = true
	q.state.Err = ""
	q.mu.Unlock()

	cats, err := q.src.ListCategories(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.state.Loading = false

	switch {
	case err != nil:
		log.Printf("Error fetching categories: %v", err)
		q.state.Err = err.Error()
		q.state.Items = DefaultCategories()
	case len(cats) == 0:
		q.state.Items = DefaultCategories()
	default:
		names := make([]string, 0, len(cats))
		for _, c := range cats {
			names = append(names, c.Name)
		}
		q.state.Items = withAll(names)
	}
	return q.snapshotLocked()
}

// Snapshot returns a copy of the current state.
func (q *CategoryQuery) Snapshot() CategoryState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *CategoryQuery) snapshotLocked() CategoryState {
	s := q.state
	s.Items = append([]string{}, q.state.Items...)
	return s
}

// withAll prepends AllCategory, dropping blanks, a server side All and repeats.
func withAll(names []string) []string {
	out := []string{AllCategory}
	seen := map[string]bool{strings.ToLower(AllCategory): true}
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
