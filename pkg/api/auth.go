package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/go-faster/errors"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Register creates an account. The backend echoes the new user.
func (c *Client) Register(ctx context.Context, email, password string) (*session.User, error) {
	if err := c.validateStruct(credentials{Email: email, Password: password}, "registration"); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   registerPath,
		body:   encodeJSON("email", email, "password", password),
	})
	if err != nil {
		return nil, err
	}

	u, err := decodeUser(body)
	if err != nil {
		return nil, errors.Wrap(err, "decoding registered user")
	}
	return u, nil
}

// Login exchanges credentials for an access token and persists it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (Token, error) {
	if err := c.validateStruct(credentials{Email: email, Password: password}, "credentials"); err != nil {
		return Token{}, err
	}

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        tokenPath,
		body:        []byte(form.Encode()),
		contentType: contentTypeForm,
	})
	if err != nil {
		return Token{}, err
	}

	tok, err := decodeToken(body)
	if err != nil {
		return Token{}, errors.Wrap(err, "decoding token")
	}
	if tok.AccessToken == "" {
		return Token{}, errors.New("token response carried no access_token")
	}

	if err := c.session.SetToken(tok.AccessToken); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// CurrentUser fetches the user the held token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: currentUserPath})
	if err != nil {
		return nil, err
	}
	u, err := decodeUser(body)
	if err != nil {
		return nil, errors.Wrap(err, "decoding current user")
	}
	return u, nil
}
