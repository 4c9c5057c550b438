package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okay-you-very-pro/oyvp/internal/config"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

// Store loads and saves the settings record at a fixed path. Every failure
// degrades to defaults or a skipped write plus one log line; no method panics.
type Store struct {
	path string
	log  logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save diagnostics.
// Without it the global logger is used at call time.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultPath returns <config dir>/config.toml.
func DefaultPath() string {
	return filepath.Join(config.ConfigDir(), SettingsFilename)
}

// NewDefaultStore returns a Store at DefaultPath.
func NewDefaultStore(opts ...Option) *Store {
	return NewStore(DefaultPath(), opts...)
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) logger() logging.Logger {
	if s.log != nil {
		return s.log
	}
	return logging.GetGlobal().With("component", "settings")
}

// Load reads the settings file. A missing file yields defaults; unreadable,
// malformed or invalid content yields defaults and is logged.
func (s *Store) Load() (Settings, LoadResult) {
	result := LoadResult{Path: s.path}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger().Info("no settings file found, using defaults", "path", s.path)
			result.Outcome = Defaulted
			return DefaultSettings(), result
		}
		return s.loadFailed(result, fmt.Errorf("failed to read settings file: %w", err))
	}

	loaded := DefaultSettings()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return s.loadFailed(result, fmt.Errorf("failed to parse settings file: %w", err))
	}
	loaded = normalize(loaded)
	if err := Validate(loaded); err != nil {
		return s.loadFailed(result, err)
	}

	s.logger().Info("settings loaded", "path", s.path,
		"window_width", loaded.WindowWidth, "window_height", loaded.WindowHeight,
		"has_folder", loaded.SelectedFolder != nil)
	result.Outcome = Loaded
	return loaded, result
}

func (s *Store) loadFailed(result LoadResult, err error) (Settings, LoadResult) {
	s.logger().Warn("settings load failed, using defaults", "path", s.path, "error", err)
	result.Outcome = DefaultedOnError
	result.Err = err
	return DefaultSettings(), result
}

// Save writes the record as TOML, overwriting the previous file. The parent
// directory is created best-effort. Failures are logged and returned in the
// result; callers may ignore it.
func (s *Store) Save(settings Settings) SaveResult {
	result := SaveResult{Path: s.path}

	if err := Validate(settings); err != nil {
		return s.saveFailed(result, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), FileModeDir); err != nil {
		s.logger().Debug("unable to create settings directory", "path", filepath.Dir(s.path), "error", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return s.saveFailed(result, fmt.Errorf("failed to marshal settings: %w", err))
	}

	if err := os.WriteFile(s.path, data, FileModeFile); err != nil {
		return s.saveFailed(result, fmt.Errorf("failed to write settings file: %w", err))
	}

	s.logger().Info("settings saved", "path", s.path,
		"window_width", settings.WindowWidth, "window_height", settings.WindowHeight)
	result.Outcome = Saved
	return result
}

func (s *Store) saveFailed(result SaveResult, err error) SaveResult {
	s.logger().Error("settings save failed", "path", s.path, "error", err)
	result.Outcome = SaveFailed
	result.Err = err
	return result
}

// Reset deletes the settings file so the next Load returns defaults.
// A missing file is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove settings file: %w", err)
	}
	s.logger().Info("settings reset", "path", s.path)
	return nil
}
