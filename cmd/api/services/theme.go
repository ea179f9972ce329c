package services

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NormalizeTheme maps anything unknown or empty to the light default.
func NormalizeTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func ValidateTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return &ValidationError{Fields: map[string]string{"theme": "oneof"}}
	}
	return nil
}
