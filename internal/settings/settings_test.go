package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, uint32(1200), s.WindowWidth)
	assert.Equal(t, uint32(800), s.WindowHeight)
	_, ok := s.Folder()
	assert.False(t, ok)
	assert.NoError(t, Validate(s))
}

func TestWithFolderDoesNotAlias(t *testing.T) {
	base := DefaultSettings().WithFolder("/a")
	next := base.WithFolder("/b")

	a, _ := base.Folder()
	b, _ := next.Folder()
	assert.Equal(t, "/a", a)
	assert.Equal(t, "/b", b)

	cleared := next.WithFolder("")
	_, ok := cleared.Folder()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	blank := "  "
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "defaults", settings: DefaultSettings()},
		{name: "folder set", settings: DefaultSettings().WithFolder("/x")},
		{name: "zero width", settings: Settings{WindowHeight: 1}, wantErr: true},
		{name: "zero height", settings: Settings{WindowWidth: 1}, wantErr: true},
		{name: "blank folder", settings: Settings{WindowWidth: 1, WindowHeight: 1, SelectedFolder: &blank}, wantErr: true},
		{name: "invalid utf8 folder", settings: DefaultSettings().WithFolder("/\xff\xfe"), wantErr: true},
		{name: "non-ascii folder", settings: DefaultSettings().WithFolder("/home/jörg/ゲーム")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.settings)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSettings)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReplayPath(t *testing.T) {
	_, ok := ReplayPath(DefaultSettings())
	assert.False(t, ok)

	path, ok := ReplayPath(DefaultSettings().WithFolder("/does/not/exist"))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/does/not/exist", "replays"), path)
}

func TestReplayDir(t *testing.T) {
	root := t.TempDir()
	s := DefaultSettings().WithFolder(root)

	_, ok := ReplayDir(s)
	assert.False(t, ok, "missing replays dir")

	require.NoError(t, os.WriteFile(filepath.Join(root, ReplaysDirName), []byte("not a dir"), FileModeFile))
	_, ok = ReplayDir(s)
	assert.False(t, ok, "replays is a regular file")

	require.NoError(t, os.Remove(filepath.Join(root, ReplaysDirName)))
	require.NoError(t, os.Mkdir(filepath.Join(root, ReplaysDirName), FileModeDir))
	path, ok := ReplayDir(s)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, ReplaysDirName), path)
}

func TestFolderExists(t *testing.T) {
	existing := t.TempDir()
	assert.True(t, FolderExists(DefaultSettings().WithFolder(existing)))
	assert.False(t, FolderExists(DefaultSettings().WithFolder(filepath.Join(existing, "missing"))))
	assert.False(t, FolderExists(DefaultSettings()))
}
