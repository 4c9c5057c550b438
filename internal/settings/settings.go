package settings

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidSettings reports a record that violates the persisted invariants.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the persisted window and folder record.
//
// TOML schema:
//
//	window_width = 1200
//	window_height = 800
//	selected_folder = '/path/to/game'   # omitted until chosen
//
// Settings are stored at <config dir>/okay-you-very-pro/config.toml.
type Settings struct {
	// WindowWidth is the last known window width. Always positive on disk.
	WindowWidth uint32 `toml:"window_width" json:"window_width"`

	// WindowHeight is the last known window height. Always positive on disk.
	WindowHeight uint32 `toml:"window_height" json:"window_height"`

	// SelectedFolder is the user-chosen folder. Nil until first chosen.
	// Whether it exists is checked when read, not when written.
	SelectedFolder *string `toml:"selected_folder,omitempty" json:"selected_folder,omitempty"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Folder returns the selected folder and whether one is set.
func (s Settings) Folder() (string, bool) {
	if s.SelectedFolder == nil {
		return "", false
	}
	return *s.SelectedFolder, true
}

// WithFolder returns a copy of s with the selected folder replaced.
// An empty path clears the selection.
func (s Settings) WithFolder(path string) Settings {
	if path == "" {
		s.SelectedFolder = nil
		return s
	}
	p := path
	s.SelectedFolder = &p
	return s
}

// WithSize returns a copy of s with the window dimensions replaced.
func (s Settings) WithSize(width, height uint32) Settings {
	s.WindowWidth = width
	s.WindowHeight = height
	return s
}

// Validate checks the persisted invariants.
func Validate(s Settings) error {
	if s.WindowWidth == 0 {
		return fmt.Errorf("%w: window_width must be positive", ErrInvalidSettings)
	}
	if s.WindowHeight == 0 {
		return fmt.Errorf("%w: window_height must be positive", ErrInvalidSettings)
	}
	if s.SelectedFolder != nil && strings.TrimSpace(*s.SelectedFolder) == "" {
		return fmt.Errorf("%w: selected_folder must not be blank", ErrInvalidSettings)
	}
	// TOML strings are UTF-8; anything else would not load back.
	if s.SelectedFolder != nil && !utf8.ValidString(*s.SelectedFolder) {
		return fmt.Errorf("%w: selected_folder must be valid UTF-8", ErrInvalidSettings)
	}
	return nil
}

// normalize maps a blank selected_folder to absent.
func normalize(s Settings) Settings {
	if s.SelectedFolder != nil && strings.TrimSpace(*s.SelectedFolder) == "" {
		s.SelectedFolder = nil
	}
	return s
}
