// Package viewstate owns the in-memory settings record and the presentation
// flags derived from it.
package viewstate

import (
	"math"
	"strings"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
)

// Persister loads and saves the settings record. *settings.Store implements it.
type Persister interface {
	Load() (settings.Settings, settings.LoadResult)
	Save(settings.Settings) settings.SaveResult
}

// FolderState is the derived existence flag of the selected folder.
type FolderState int

const (
	FolderMissing FolderState = iota
	FolderPresent
)

func (f FolderState) String() string {
	if f == FolderPresent {
		return "present"
	}
	return "missing"
}

// Binder holds the settings for the lifetime of the UI. It is driven from a
// single event loop and is not safe for concurrent use.
type Binder struct {
	store      Persister
	current    settings.Settings
	loadResult settings.LoadResult
	lastSave   settings.SaveResult
	hasSaved   bool

	lastWidth  uint32
	lastHeight uint32

	folder   FolderState
	revision uint64

	exists func(settings.Settings) bool
	log    logging.Logger
}

// Option configures a Binder.
type Option func(*Binder)

// WithExistsFunc replaces the folder existence check.
func WithExistsFunc(fn func(settings.Settings) bool) Option {
	return func(b *Binder) {
		b.exists = fn
	}
}

// WithLogger sets the binder's logger.
func WithLogger(l logging.Logger) Option {
	return func(b *Binder) {
		b.log = l
	}
}

// New loads the settings once and derives the initial flags.
func New(store Persister, opts ...Option) *Binder {
	b := &Binder{
		store:  store,
		exists: settings.FolderExists,
		log:    logging.GetGlobal().With("component", "viewstate"),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.current, b.loadResult = store.Load()
	b.lastWidth = b.current.WindowWidth
	b.lastHeight = b.current.WindowHeight
	b.deriveFolder()
	return b
}

// Resize records a new window size and persists it. Non-positive or
// out-of-range dimensions are discarded without touching the record.
func (b *Binder) Resize(width, height int) bool {
	if width <= 0 || height <= 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		b.log.Debug("ignoring resize", "width", width, "height", height)
		return false
	}
	b.log.Info("window resized", "width", width, "height", height)
	b.current = b.current.WithSize(uint32(width), uint32(height))
	b.save()
	b.lastWidth = uint32(width)
	b.lastHeight = uint32(height)
	return true
}

// PickFolder stores the chosen folder exactly as given, persists it,
// recomputes the existence flag and invalidates cached views. An empty or
// all-blank path is a cancelled pick.
func (b *Binder) PickFolder(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	b.log.Info("folder selected", "path", path)
	b.current = b.current.WithFolder(path)
	b.save()
	b.deriveFolder()
	b.revision++
	return true
}

func (b *Binder) save() {
	b.lastSave = b.store.Save(b.current)
	b.hasSaved = true
}

func (b *Binder) deriveFolder() {
	if b.exists(b.current) {
		b.folder = FolderPresent
		return
	}
	b.folder = FolderMissing
}

// Settings returns a copy of the in-memory record.
func (b *Binder) Settings() settings.Settings {
	s := b.current
	if folder, ok := s.Folder(); ok {
		s = s.WithFolder(folder)
	}
	return s
}

// LoadResult returns the outcome of the startup load.
func (b *Binder) LoadResult() settings.LoadResult {
	return b.loadResult
}

// LastSaveResult returns the most recent save outcome; ok is false before any save.
func (b *Binder) LastSaveResult() (settings.SaveResult, bool) {
	return b.lastSave, b.hasSaved
}

// LastKnownSize returns the most recent accepted window size.
func (b *Binder) LastKnownSize() (width, height uint32) {
	return b.lastWidth, b.lastHeight
}

// Folder returns the selected folder and whether one is set.
func (b *Binder) Folder() (string, bool) {
	return b.current.Folder()
}

// FolderState returns the derived existence flag.
func (b *Binder) FolderState() FolderState {
	return b.folder
}

// FolderExists reports whether the selected folder was present at the last derivation.
func (b *Binder) FolderExists() bool {
	return b.folder == FolderPresent
}

// Accent returns the tone for folder-dependent UI elements.
func (b *Binder) Accent() domain.Tone {
	if b.folder == FolderPresent {
		return domain.TonePositive
	}
	return domain.ToneNegative
}

// ReplayPath returns the replays subdirectory of the selected folder.
func (b *Binder) ReplayPath() (string, bool) {
	return settings.ReplayPath(b.current)
}

// Revision increases every time derived view state changes. Renderers compare
// it against a cached value to know when to rebuild.
func (b *Binder) Revision() uint64 {
	return b.revision
}
