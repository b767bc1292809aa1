package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func decodeWallpapers(body []byte) ([]RawWallpaper, error) {
	out := []RawWallpaper{}
	err := decodeList(body, func(d *jx.Decoder) error {
		var w RawWallpaper
		if err := w.Decode(d); err != nil {
			return err
		}
		out = append(out, w)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decoding wallpapers")
	}
	return out, nil
}

// ListWallpapers returns one page of all wallpapers, newest first.
func (c *Client) ListWallpapers(ctx context.Context, skip, limit int) ([]RawWallpaper, error) {
	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   wallpapersPath,
		query:  pageQuery(skip, limit),
	})
	if err != nil {
		return nil, err
	}
	return decodeWallpapers(body)
}

// ListWallpapersByCategory returns one page of a category. The backend matches the name case-insensitively.
func (c *Client) ListWallpapersByCategory(ctx context.Context, category string, skip, limit int) ([]RawWallpaper, error) {
	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   categoryListPath + url.PathEscape(category),
		query:  pageQuery(skip, limit),
	})
	if err != nil {
		return nil, err
	}
	return decodeWallpapers(body)
}

// Like toggles the current user's like. The message says which way it went.
func (c *Client) Like(ctx context.Context, id string) (StatusMessage, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf(likePathFormat, url.PathEscape(id)),
	})
	if err != nil {
		return StatusMessage{}, err
	}
	return decodeStatusMessage(body), nil
}

// RecordDownload increments the download counter of a wallpaper.
func (c *Client) RecordDownload(ctx context.Context, id string) (StatusMessage, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf(recordDownloadFormat, url.PathEscape(id)),
	})
	if err != nil {
		return StatusMessage{}, err
	}
	return decodeStatusMessage(body), nil
}
