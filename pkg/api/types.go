package api

import (
	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/go-faster/jx"
)

// OptString is a string that may be absent or null on the wire.
type OptString struct {
	Value string
	Set   bool
}

// NewOptString returns a set OptString.
func NewOptString(v string) OptString {
	return OptString{Value: v, Set: true}
}

// IsSet reports whether the value was present and not null.
func (o OptString) IsSet() bool { return o.Set }

// Get returns the value and whether it is set.
func (o OptString) Get() (string, bool) { return o.Value, o.Set }

// Or returns the value if set, d otherwise.
func (o OptString) Or(d string) string {
	if o.Set {
		return o.Value
	}
	return d
}

// Decode reads a string or null.
func (o *OptString) Decode(d *jx.Decoder) error {
	*o = OptString{}
	if d.Next() == jx.Null {
		return d.Null()
	}
	v, err := d.Str()
	if err != nil {
		return err
	}
	*o = NewOptString(v)
	return nil
}

// RawWallpaper is a wallpaper as the backend sends it. The admin listing fills UploadDate and CategoryID.
type RawWallpaper struct {
	ID            string
	Title         string
	CategoryName  string
	Description   OptString
	FileURL       OptString // google_drive_file_url
	FileID        OptString // google_drive_file_id
	LikesCount    int
	DownloadCount int
	UploadDate    OptString
	CategoryID    OptString
}

// Decode reads a wallpaper object, skipping unknown fields.
func (w *RawWallpaper) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id", "_id":
			w.ID, err = decodeID(d)
		case "title":
			w.Title, err = decodeString(d)
		case "category_name":
			w.CategoryName, err = decodeString(d)
		case "description":
			err = w.Description.Decode(d)
		case "google_drive_file_url":
			err = w.FileURL.Decode(d)
		case "google_drive_file_id":
			err = w.FileID.Decode(d)
		case "likes_count":
			w.LikesCount, err = decodeInt(d)
		case "download_count":
			w.DownloadCount, err = decodeInt(d)
		case "upload_date":
			err = w.UploadDate.Decode(d)
		case "category_id":
			var id string
			if id, err = decodeID(d); err == nil && id != "" {
				w.CategoryID = NewOptString(id)
			}
		default:
			err = d.Skip()
		}
		return err
	})
}

// Category is a category as listed by the backend.
type Category struct {
	ID   string
	Name string
}

// Decode reads a category object.
func (c *Category) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "_id", "id":
			c.ID, err = decodeID(d)
		case "name":
			c.Name, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// Token is the response of the token endpoint.
type Token struct {
	AccessToken string
	TokenType   string
}

// StatusMessage is the {status, message} acknowledgement of the action endpoints.
type StatusMessage struct {
	Status  string
	Message string
}

// UploadResult acknowledges an admin upload.
type UploadResult struct {
	StatusMessage
	WallpaperID string
	FileID      string
}

func decodeUser(body []byte) (*session.User, error) {
	u := &session.User{}
	err := decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "_id", "id":
			u.ID, err = decodeID(d)
		case "email":
			u.Email, err = decodeString(d)
		case "role":
			u.Role, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func decodeToken(body []byte) (Token, error) {
	var t Token
	err := decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "access_token":
			t.AccessToken, err = decodeString(d)
		case "token_type":
			t.TokenType, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	})
	return t, err
}

func decodeUploadResult(body []byte) (UploadResult, error) {
	var r UploadResult
	err := decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "status":
			r.Status, err = decodeString(d)
		case "message":
			r.Message, err = decodeString(d)
		case "wallpaper_id":
			r.WallpaperID, err = decodeID(d)
		case "google_drive_file_id":
			r.FileID, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	})
	return r, err
}

// decodeStatusMessage tolerates a body that is not an object; the endpoints only need a 2xx.
func decodeStatusMessage(body []byte) StatusMessage {
	var m StatusMessage
	_ = decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "status":
			m.Status, err = decodeString(d)
		case "message":
			m.Message, err = decodeString(d)
		default:
			err = d.Skip()
		}
		return err
	})
	return m
}
