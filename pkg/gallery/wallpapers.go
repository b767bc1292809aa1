package gallery

import (
	"context"
	"sync"

	"github.com/dixieflatline76/wallgallery/util"
	"github.com/dixieflatline76/wallgallery/util/log"
)

// Params selects one page of wallpapers.
type Params struct {
	Category string // "All" or blank for every category
	Skip     int
	Limit    int
}

func (p Params) normalize(defaultLimit int) Params {
	if IsAll(p.Category) {
		p.Category = AllCategory
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	return p
}

// WallpaperQuery keeps the state of one wallpaper listing. Only the response of the
// latest request is ever applied; earlier ones are dropped on arrival.
type WallpaperQuery struct {
	src          WallpaperSource
	defaultLimit int

	ctx    context.Context
	cancel context.CancelFunc
	gen    *util.SafeCounter
	alive  *util.SafeFlag

	mu     sync.Mutex
	state  QueryState
	params Params

	listeners listeners[QueryState]
}

// NewWallpaperQuery creates an idle query. defaultLimit <= 0 means DefaultPageSize.
func NewWallpaperQuery(src WallpaperSource, defaultLimit int) *WallpaperQuery {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WallpaperQuery{
		src:          src,
		defaultLimit: defaultLimit,
		ctx:          ctx,
		cancel:       cancel,
		gen:          util.NewSafeCounter(),
		alive:        util.NewSafeFlag(true),
		state:        QueryState{Items: []Wallpaper{}, HasMore: true},
		params:       Params{Category: AllCategory, Limit: defaultLimit},
	}
}

// Set changes the parameters and starts a request. The returned channel closes once
// that request has been applied or discarded.
func (q *WallpaperQuery) Set(p Params) <-chan struct{} {
	return q.start(p.normalize(q.defaultLimit))
}

// Refetch reissues the current parameters.
func (q *WallpaperQuery) Refetch() <-chan struct{} {
	q.mu.Lock()
	p := q.params
	q.mu.Unlock()
	return q.start(p)
}

// Params returns the parameters of the latest request.
func (q *WallpaperQuery) Params() Params {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.params
}

// Snapshot returns a copy of the current state.
func (q *WallpaperQuery) Snapshot() QueryState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.clone()
}

// OnChange registers fn for every state change. The returned func unregisters it.
func (q *WallpaperQuery) OnChange(fn func(QueryState)) func() {
	return q.listeners.add(fn)
}

// Close stops the query. In-flight requests are cancelled and their responses dropped.
func (q *WallpaperQuery) Close() {
	if q.alive.Clear() {
		q.cancel()
	}
}

func (q *WallpaperQuery) start(p Params) <-chan struct{} {
	done := make(chan struct{})
	if !q.alive.Value() {
		close(done)
		return done
	}

	q.mu.Lock()
	gen := q.gen.Next()
	q.params = p
	q.state.Loading = true
	q.state.Err = ""
	snap := q.state.clone()
	q.mu.Unlock()

	q.listeners.notify(snap)

	go q.fetch(gen, p, done)
	return done
}

func (q *WallpaperQuery) fetch(gen int64, p Params, done chan struct{}) {
	defer close(done)

	var (
		items []Wallpaper
		err   error
	)
	if IsAll(p.Category) {
		raws, e := q.src.ListWallpapers(q.ctx, p.Skip, p.Limit)
		items, err = FromRawList(raws), e
	} else {
		raws, e := q.src.ListWallpapersByCategory(q.ctx, p.Category, p.Skip, p.Limit)
		items, err = FromRawList(raws), e
	}

	q.mu.Lock()
	if !q.alive.Value() || !q.gen.IsCurrent(gen) {
		q.mu.Unlock()
		log.Debugf("dropping stale wallpaper response for %+v", p)
		return
	}

	q.state.Loading = false
	if err != nil {
		log.Printf("Error fetching wallpapers: %v", err)
		q.state.Err = err.Error()
		q.state.Items = []Wallpaper{}
	} else {
		q.state.Err = ""
		q.state.Items = items
		q.state.HasMore = len(items) == p.Limit
	}
	snap := q.state.clone()
	q.mu.Unlock()

	q.listeners.notify(snap)
}
