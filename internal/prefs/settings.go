package prefs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/jask/basket/internal/notify"
)

const settingsFile = "prefs.json"

// Settings are the toggles on the settings screen.
type Settings struct {
	DarkMode    bool `json:"dark_mode"`
	Push        bool `json:"push"`
	Reminders   bool `json:"reminders"`
	Shared      bool `json:"shared"`
	Suggestions bool `json:"suggestions"`
}

// Defaults is what a fresh install starts with: light theme, everything on.
func Defaults() Settings {
	return Settings{Push: true, Reminders: true, Shared: true, Suggestions: true}
}

// Notify maps the toggles onto the alerts feed filter.
func (s Settings) Notify() notify.Prefs {
	return notify.Prefs{Reminders: s.Reminders, Shared: s.Shared, Suggestions: s.Suggestions}
}

func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "basket")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// SaveSettings replaces the prefs file in one rename.
func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// LoadSettings returns Defaults when no prefs file exists yet.
func LoadSettings() (Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return Defaults(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), err
	}
	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), err
	}
	return s, nil
}
