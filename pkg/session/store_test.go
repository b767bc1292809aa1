package session

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	assert.Equal(t, "", s.Get("missing"))

	require.NoError(t, s.Set("k", "v1"))
	assert.Equal(t, "v1", s.Get("k"))

	require.NoError(t, s.Set("k", "v2"))
	assert.Equal(t, "v2", s.Get("k"))

	require.NoError(t, s.Remove("k"))
	assert.Equal(t, "", s.Get("k"))

	// Removing twice is not an error
	require.NoError(t, s.Remove("k"))
}

func TestStores(t *testing.T) {
	keyring.MockInit()

	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{
			name:  "Memory",
			store: func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			name: "File",
			store: func(t *testing.T) Store {
				fs, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "config.json"))
				require.NoError(t, err)
				return fs
			},
		},
		{
			name:  "Keyring",
			store: func(t *testing.T) Store { return NewKeyringStore("tester") },
		},
		{
			name:  "Prefs",
			store: func(t *testing.T) Store { return NewPrefsStore(test.NewApp().Preferences()) },
		},
		{
			name: "Layered",
			store: func(t *testing.T) Store {
				return Layered{Secrets: NewMemoryStore(), Prefs: NewMemoryStore()}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exerciseStore(t, tt.store(t))
		})
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ThemeKey, "dark"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", reopened.Get(ThemeKey))
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "", fs.Get(TokenKey))
}

func TestLayeredRouting(t *testing.T) {
	secrets := NewMemoryStore()
	prefs := NewMemoryStore()
	l := Layered{Secrets: secrets, Prefs: prefs}

	require.NoError(t, l.Set(TokenKey, "tok"))
	require.NoError(t, l.Set(ThemeKey, "light"))

	assert.Equal(t, "tok", secrets.Get(TokenKey))
	assert.Equal(t, "", prefs.Get(TokenKey))
	assert.Equal(t, "light", prefs.Get(ThemeKey))
	assert.Equal(t, "", secrets.Get(ThemeKey))
}
