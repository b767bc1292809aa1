package session

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme is the persisted colour scheme preference.
type Theme string

// Supported themes
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q, want dark or light", s)
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// LoadTheme returns the persisted theme. When nothing valid is stored, systemDark decides;
// a nil systemDark means light.
func LoadTheme(store Store, systemDark func() bool) Theme {
	if t, err := ParseTheme(store.Get(ThemeKey)); err == nil {
		return t
	}
	if systemDark != nil && systemDark() {
		return ThemeDark
	}
	return ThemeLight
}

// SaveTheme persists t.
func SaveTheme(store Store, t Theme) error {
	if err := store.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// SystemDark returns a system preference probe backed by the fyne app settings.
func SystemDark(app fyne.App) func() bool {
	return func() bool {
		return app.Settings().ThemeVariant() == theme.VariantDark
	}
}
