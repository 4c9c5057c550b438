// Package settings persists the window and folder settings record.
package settings

import "os"

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML files.
	FileExtTOML = ".toml"
)

const (
	// SettingsFilename is the settings file name inside the config directory.
	SettingsFilename = "config" + FileExtTOML

	// ReplaysDirName is the subdirectory of the selected folder holding replays.
	ReplaysDirName = "replays"
)

// Default window dimensions.
const (
	DefaultWindowWidth  uint32 = 1200
	DefaultWindowHeight uint32 = 800
)
