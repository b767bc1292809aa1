package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-faster/errors"
)

// ListAllWallpapers returns every wallpaper with admin fields. Admin only.
func (c *Client) ListAllWallpapers(ctx context.Context) ([]RawWallpaper, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: adminWallpapersPath})
	if err != nil {
		return nil, err
	}
	return decodeWallpapers(body)
}

type upload struct {
	Title      string `validate:"required"`
	CategoryID string `validate:"required"`
	Filename   string `validate:"required"`
}

// UploadWallpaper sends an image with its metadata. The backend stores it on Drive. Admin only.
func (c *Client) UploadWallpaper(ctx context.Context, title, description, categoryID, filename string, image io.Reader) (UploadResult, error) {
	if err := c.validateStruct(upload{Title: title, CategoryID: categoryID, Filename: filename}, "upload"); err != nil {
		return UploadResult{}, err
	}
	if image == nil {
		return UploadResult{}, errors.New("invalid upload: no image data")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range [][2]string{{"title", title}, {"description", description}, {"category_id", categoryID}} {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return UploadResult{}, errors.Wrap(err, "writing form")
		}
	}
	part, err := mw.CreateFormFile(ImageField, filename)
	if err != nil {
		return UploadResult{}, errors.Wrap(err, "creating image part")
	}
	if _, err := io.Copy(part, image); err != nil {
		return UploadResult{}, errors.Wrap(err, "reading image")
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, errors.Wrap(err, "closing form")
	}

	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        adminUploadPath,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return UploadResult{}, err
	}

	res, err := decodeUploadResult(body)
	if err != nil {
		return UploadResult{}, errors.Wrap(err, "decoding upload result")
	}
	return res, nil
}
