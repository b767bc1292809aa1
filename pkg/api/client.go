// Package api is the HTTP client for the wallpaper gallery backend.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/dixieflatline76/wallgallery/util/log"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client issues requests against one backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	validate   *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit throttles the client to perSecond requests. Zero or less disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New creates a Client for baseURL. A nil sess gets an in-memory session.
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	if sess == nil {
		sess = session.New(session.NewMemoryStore())
	}
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		session:    sess,
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Session returns the session whose token authorizes requests.
func (c *Client) Session() *session.Session { return c.session }

// IsAuthenticated reports whether a token is held.
func (c *Client) IsAuthenticated() bool {
	return c.session.HasToken()
}

// Logout forgets the token and user.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// request describes one call. A nil body sends no payload.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

// do performs req and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Method: req.method, URL: u, Err: err}
		}
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, &NetworkError{Method: req.method, URL: u, Err: err}
	}

	contentType := req.contentType
	if contentType == "" {
		contentType = contentTypeJSON
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)
	reqID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, reqID)
	if tok := c.session.Token(); tok != "" {
		(&oauth2.Token{AccessToken: tok}).SetAuthHeader(httpReq)
	}

	log.Debugf("%s %s [%s]", req.method, u, reqID)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Method: req.method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: req.method, URL: u, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp.StatusCode, data)
		log.Debugf("%s %s [%s] failed: %s", req.method, u, reqID, apiErr.Message)
		return nil, apiErr
	}
	return data, nil
}

// encodeJSON builds a flat JSON object of string fields, in argument order.
func encodeJSON(kv ...string) []byte {
	var e jx.Encoder
	e.ObjStart()
	for i := 0; i+1 < len(kv); i += 2 {
		e.FieldStart(kv[i])
		e.Str(kv[i+1])
	}
	e.ObjEnd()
	return e.Bytes()
}

func (c *Client) validateStruct(v any, what string) error {
	if err := c.validate.Struct(v); err != nil {
		return errors.Wrapf(err, "invalid %s", what)
	}
	return nil
}
