package gallery

import (
	"context"
	"sync"
	"time"

	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/dixieflatline76/wallgallery/util/log"
)

// Auth owns the login state of a session.
type Auth struct {
	src  AuthSource
	sess *session.Session
	now  func() time.Time

	mu      sync.Mutex
	loading bool
	err     string
}

// NewAuth creates an Auth over sess. It reports Loading until Start returns.
func NewAuth(src AuthSource, sess *session.Session) *Auth {
	return &Auth{src: src, sess: sess, now: time.Now, loading: true}
}

// Start resolves the user behind a persisted token. Any failure leaves the session
// anonymous with the token cleared; nothing is reported besides the log.
func (a *Auth) Start(ctx context.Context) {
	defer a.setLoading(false)

	if !a.sess.HasToken() {
		return
	}
	if a.sess.TokenExpired(a.now()) {
		log.Println("Stored token has expired, signing out")
		a.clearSession()
		return
	}

	u, err := a.src.CurrentUser(ctx)
	if err != nil {
		log.Printf("Auth check failed: %v", err)
		a.clearSession()
		return
	}
	a.sess.SetUser(u)
}

// Login signs in and resolves the user. If the user cannot be fetched the token is dropped again.
func (a *Auth) Login(ctx context.Context, email, password string) ActionResult {
	a.setErr("")

	if _, err := a.src.Login(ctx, email, password); err != nil {
		return a.fail(err, loginFailedMsg)
	}

	u, err := a.src.CurrentUser(ctx)
	if err != nil {
		a.clearSession()
		return a.fail(err, loginFailedMsg)
	}
	a.sess.SetUser(u)
	return ActionResult{Success: true}
}

// Register creates an account without signing in.
func (a *Auth) Register(ctx context.Context, email, password string) ActionResult {
	a.setErr("")

	if _, err := a.src.Register(ctx, email, password); err != nil {
		return a.fail(err, registerFailedMsg)
	}
	return ActionResult{Success: true}
}

// Logout forgets the token and user.
func (a *Auth) Logout() {
	a.clearSession()
	a.setErr("")
}

// User returns the signed in user, nil when anonymous.
func (a *Auth) User() *session.User { return a.sess.User() }

// IsAuthenticated reports whether a user is signed in.
func (a *Auth) IsAuthenticated() bool { return a.sess.IsAuthenticated() }

// IsAdmin reports whether the signed in user is an administrator.
func (a *Auth) IsAdmin() bool { return a.sess.IsAdmin() }

// Loading reports whether Start is still resolving the user.
func (a *Auth) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Err returns the message of the last failed Login or Register.
func (a *Auth) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Auth) fail(err error, fallback string) ActionResult {
	msg := api.DetailOr(err, fallback)
	log.Printf("%s: %v", fallback, err)
	a.setErr(msg)
	return ActionResult{Success: false, Error: msg}
}

func (a *Auth) clearSession() {
	if err := a.sess.Clear(); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
}

func (a *Auth) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}

func (a *Auth) setErr(msg string) {
	a.mu.Lock()
	a.err = msg
	a.mu.Unlock()
}
