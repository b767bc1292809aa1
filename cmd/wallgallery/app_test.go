package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/dixieflatline76/wallgallery/config"
	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv       *httptest.Server
	store     *session.MemoryStore
	downloads atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: session.NewMemoryStore()}

	r := chi.NewRouter()
	r.Get("/categories/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"_id":"c1","name":"Nature"},{"_id":"c2","name":"Cars"}]`)
	})
	r.Get("/wallpapers/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":"w1","title":"Peaks","category_name":"Nature","description":"snowy mountain peaks at dawn",
			 "google_drive_file_url":"`+f.srv.URL+`/file?export=view","likes_count":2,"download_count":5},
			{"id":"w2","title":"Drift","category_name":"Cars","google_drive_file_id":"DRIFT"}
		]`)
	})
	r.Get("/file", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "download", r.URL.Query().Get("export"))
		w.Header().Set("Content-Type", "image/jpeg")
		io.WriteString(w, "jpeg-bytes")
	})
	r.Post("/wallpapers/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		f.downloads.Add(1)
		io.WriteString(w, `{"status":"success","message":"Download count incremented"}`)
	})
	r.Post("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"detail":"Incorrect email or password"}`)
			return
		}
		io.WriteString(w, `{"access_token":"tok","token_type":"bearer"}`)
	})
	r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"detail":"Could not validate credentials"}`)
			return
		}
		io.WriteString(w, `{"_id":"u1","email":"alice@example.com","role":"user"}`)
	})

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.Config{APIBaseURL: f.srv.URL, PageSize: config.DefaultPageSize}
	err := newApp(cfg, f.store, &out).dispatch(context.Background(), args)
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "categories")
	require.NoError(t, err)
	assert.Equal(t, "All\nNature\nCars\n", out)
}

func TestListAndSearchCommands(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Peaks")
	assert.Contains(t, out, "Drift")
	assert.Contains(t, out, "https://drive.google.com/thumbnail?id=DRIFT&sz=w800")

	out, err = f.run(t, "search", "MOUNTAIN")
	require.NoError(t, err)
	assert.Contains(t, out, "Peaks")
	assert.NotContains(t, out, "Drift")

	out, err = f.run(t, "search", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "no wallpapers found")
}

func TestAuthCommands(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not logged in\n", out)

	_, err = f.run(t, "login", "-email", "alice@example.com", "-password", "wrong")
	assert.EqualError(t, err, "Incorrect email or password")

	out, err = f.run(t, "login", "-email", "alice@example.com", "-password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as alice@example.com")
	assert.Equal(t, "tok", f.store.Get(session.TokenKey))

	out, err = f.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "alice@example.com (user)")

	err = func() error { _, err := f.run(t, "admin", "list"); return err }()
	assert.Error(t, err, "a regular user is not an admin")

	_, err = f.run(t, "logout")
	require.NoError(t, err)
	assert.Empty(t, f.store.Get(session.TokenKey))
}

func TestDownloadCommand(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "peaks.jpg")

	out, err := f.run(t, "download", "-o", path, "w1")
	require.NoError(t, err)
	assert.Contains(t, out, "saved "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, int32(1), f.downloads.Load())

	_, err = f.run(t, "download", "-o", path, "missing")
	assert.Error(t, err)
	_, err = f.run(t, "download", "-fit", "wide", "w1")
	assert.Error(t, err)
}

func TestThemeCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = f.run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
	assert.Equal(t, "dark", f.store.Get(session.ThemeKey))

	_, err = f.run(t, "theme", "sepia")
	assert.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "frobnicate")
	assert.Error(t, err)
}
