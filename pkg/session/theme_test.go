package session

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	got, err = ParseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}

func TestLoadTheme(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		name   string
		stored string
		system func() bool
		want   Theme
	}{
		{name: "Stored dark wins over system", stored: "dark", system: light, want: ThemeDark},
		{name: "Stored light wins over system", stored: "light", system: dark, want: ThemeLight},
		{name: "Unset follows dark system", system: dark, want: ThemeDark},
		{name: "Unset follows light system", system: light, want: ThemeLight},
		{name: "Garbage follows system", stored: "purple", system: dark, want: ThemeDark},
		{name: "No probe means light", want: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tt.stored != "" {
				require.NoError(t, store.Set(ThemeKey, tt.stored))
			}
			assert.Equal(t, tt.want, LoadTheme(store, tt.system))
		})
	}
}

func TestSaveThemeAndToggle(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, SaveTheme(store, ThemeDark.Toggle()))
	assert.Equal(t, "light", store.Get(ThemeKey))
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, LoadTheme(store, func() bool { return true }))
}

func TestSystemDarkFollowsApp(t *testing.T) {
	a := test.NewApp()
	want := a.Settings().ThemeVariant() == theme.VariantDark

	store := NewPrefsStore(a.Preferences())
	got := LoadTheme(store, SystemDark(a))
	assert.Equal(t, want, got.IsDark())

	require.NoError(t, SaveTheme(store, ThemeDark))
	assert.Equal(t, ThemeDark, LoadTheme(store, SystemDark(a)))
}
