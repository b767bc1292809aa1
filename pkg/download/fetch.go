// Package download fetches wallpaper files behind derived Drive download URLs.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/dixieflatline76/wallgallery/util/log"
	"golang.org/x/net/html"
)

// Drive serves large files behind a "can't scan for viruses" page carrying one of these.
const (
	confirmFormID   = "download-form"
	confirmAnchorID = "uc-download-link"
)

// maxInterstitialSize caps how much of an HTML response is read looking for the confirm link.
const maxInterstitialSize = 1 << 20

// Fetcher downloads files over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher. A nil client means http.DefaultClient.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch writes the file at rawURL to w and returns the bytes written. When the server answers
// with an HTML confirmation page the confirm link is followed once.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	if rawURL == "" {
		return 0, fmt.Errorf("no download URL")
	}

	resp, err := f.get(ctx, rawURL)
	if err != nil {
		return 0, err
	}

	if isHTML(resp) {
		next, err := confirmURL(resp)
		resp.Body.Close()
		if err != nil {
			return 0, err
		}
		log.Debugf("following download confirmation to %s", next)

		resp, err = f.get(ctx, next)
		if err != nil {
			return 0, err
		}
		if isHTML(resp) {
			resp.Body.Close()
			return 0, fmt.Errorf("download of %s still returned an HTML page after confirmation", rawURL)
		}
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read download body: %w", err)
	}
	return n, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("download of %s failed: status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}

func isHTML(resp *http.Response) bool {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && mt == "text/html"
}

// confirmURL finds the confirm target on a Drive interstitial page.
func confirmURL(resp *http.Response) (string, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInterstitialSize))
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation page: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse confirmation page: %w", err)
	}

	target, ok := findConfirm(doc)
	if !ok {
		return "", fmt.Errorf("server returned an HTML page without a download link")
	}

	ref, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid confirmation link %q: %w", target, err)
	}
	return resp.Request.URL.ResolveReference(ref).String(), nil
}

func findConfirm(doc *html.Node) (string, bool) {
	var (
		target string
		found  bool
	)

	var crawler func(*html.Node)
	crawler = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "form" && attr(n, "id") == confirmFormID:
				target, found = formTarget(n), true
				return
			case n.Data == "a" && attr(n, "id") == confirmAnchorID:
				if href := attr(n, "href"); href != "" {
					target, found = href, true
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			crawler(c)
		}
	}
	crawler(doc)
	return target, found
}

// formTarget turns a GET form into its submission URL: action plus hidden inputs as query.
func formTarget(form *html.Node) string {
	q := url.Values{}

	var inputs func(*html.Node)
	inputs = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" && strings.EqualFold(attr(n, "type"), "hidden") {
			if name := attr(n, "name"); name != "" {
				q.Set(name, attr(n, "value"))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			inputs(c)
		}
	}
	inputs(form)

	action := attr(form, "action")
	if len(q) == 0 {
		return action
	}
	sep := "?"
	if strings.Contains(action, "?") {
		sep = "&"
	}
	return action + sep + q.Encode()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
