package storage

const (
	SettingTheme         = "theme"
	SettingLanguage      = "language"
	SettingNotifications = "notifications"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Setting is a single key/value preference. Settings are created with
// defaults on first open, overwritten in place and never deleted.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

func DefaultSettings() []Setting {
	return []Setting{
		{Key: SettingTheme, Value: ThemeLight},
		{Key: SettingLanguage, Value: "it"},
		{Key: SettingNotifications, Value: "true"},
	}
}
