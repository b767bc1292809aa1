package gallery

import (
	"context"
	"sync"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/util/log"
)

// Actions performs like and download bookkeeping. Loading and Err are shared by both.
type Actions struct {
	src ActionSource

	mu      sync.Mutex
	pending int
	err     string
}

// NewActions creates an idle Actions.
func NewActions(src ActionSource) *Actions {
	return &Actions{src: src}
}

// Like toggles the like of id.
func (a *Actions) Like(ctx context.Context, id string) ActionResult {
	a.begin()
	res, err := a.src.Like(ctx, id)
	if err != nil {
		return a.fail(err, likeFailedMsg)
	}
	a.end("")
	return ActionResult{Success: true, Message: res.Message}
}

// Download records a download of id. Fetching the file itself is the caller's business.
func (a *Actions) Download(ctx context.Context, id string) ActionResult {
	a.begin()
	if _, err := a.src.RecordDownload(ctx, id); err != nil {
		return a.fail(err, downloadFailedMsg)
	}
	a.end("")
	return ActionResult{Success: true}
}

// Loading reports whether an action is in flight.
func (a *Actions) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending > 0
}

// Err returns the message of the last failed action, cleared when the next one starts.
func (a *Actions) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Actions) begin() {
	a.mu.Lock()
	a.pending++
	a.err = ""
	a.mu.Unlock()
}

func (a *Actions) end(errMsg string) {
	a.mu.Lock()
	a.pending--
	a.err = errMsg
	a.mu.Unlock()
}

func (a *Actions) fail(err error, fallback string) ActionResult {
	msg := api.DetailOr(err, fallback)
	log.Printf("%s: %v", fallback, err)
	a.end(msg)
	return ActionResult{Success: false, Error: msg}
}
