package settings

import (
	"os"
	"path/filepath"
)

// ReplayPath joins the selected folder with the replays subdirectory.
// It does not touch the filesystem; ok is false when no folder is selected.
func ReplayPath(s Settings) (path string, ok bool) {
	folder, ok := s.Folder()
	if !ok {
		return "", false
	}
	return filepath.Join(folder, ReplaysDirName), true
}

// ReplayDir returns the replay path only when it exists and is a directory.
// A regular file at that path counts as absent.
func ReplayDir(s Settings) (string, bool) {
	path, ok := ReplayPath(s)
	if !ok {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return path, true
}

// FolderExists reports whether the selected folder is present on disk.
func FolderExists(s Settings) bool {
	folder, ok := s.Folder()
	if !ok {
		return false
	}
	_, err := os.Stat(folder)
	return err == nil
}
