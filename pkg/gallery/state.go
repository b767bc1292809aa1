package gallery

import "sync"

// QueryState is a snapshot of a wallpaper query.
type QueryState struct {
	Loading bool
	Err     string // "" when the last request succeeded
	Items   []Wallpaper
	HasMore bool // The last page was full
}

func (s QueryState) clone() QueryState {
	s.Items = append([]Wallpaper{}, s.Items...)
	return s
}

// ActionResult is the outcome of a user action. Error is set only when Success is false.
type ActionResult struct {
	Success bool
	Message string
	Error   string
}

// listeners is a set of change callbacks, invoked outside the owner's lock.
type listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

func (l *listeners[T]) notify(v T) {
	l.mu.Lock()
	fns := make([]func(T), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
