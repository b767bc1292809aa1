package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func decodeCategories(body []byte) ([]Category, error) {
	out := []Category{}
	err := decodeList(body, func(d *jx.Decoder) error {
		// Plain string names are accepted alongside objects
		if d.Next() == jx.String {
			name, err := d.Str()
			if err != nil {
				return err
			}
			out = append(out, Category{Name: name})
			return nil
		}
		var cat Category
		if err := cat.Decode(d); err != nil {
			return err
		}
		out = append(out, cat)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decoding categories")
	}
	return out, nil
}

// ListCategories returns the public category listing.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: categoriesPath})
	if err != nil {
		return nil, err
	}
	return decodeCategories(body)
}

// ListAdminCategories returns every category with its id. Admin only.
func (c *Client) ListAdminCategories(ctx context.Context) ([]Category, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: adminCategoriesPath})
	if err != nil {
		return nil, err
	}
	return decodeCategories(body)
}

type newCategory struct {
	Name string `validate:"required"`
}

// CreateCategory adds a category. Admin only.
func (c *Client) CreateCategory(ctx context.Context, name string) (Category, error) {
	if err := c.validateStruct(newCategory{Name: name}, "category"); err != nil {
		return Category{}, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", name); err != nil {
		return Category{}, errors.Wrap(err, "writing form")
	}
	if err := mw.Close(); err != nil {
		return Category{}, errors.Wrap(err, "closing form")
	}

	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        adminCategoriesPath,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return Category{}, err
	}

	cat := Category{Name: name}
	if err := decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "_id", "id":
			cat.ID, err = decodeID(d)
		case "name":
			cat.Name, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	}); err != nil {
		return Category{}, errors.Wrap(err, "decoding created category")
	}
	return cat, nil
}
