// Package state holds the bubbletea model that hosts the view state binder.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/errors"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/okay-you-very-pro/oyvp/internal/tui/render"
	"github.com/okay-you-very-pro/oyvp/internal/tui/theme"
	"github.com/okay-you-very-pro/oyvp/internal/viewstate"
)

const (
	// header, folder line, status line, help line
	chromeLines           = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 20
	statusClearDuration   = 5 * time.Second
)

// Model is the bubbletea model for the matchup viewer.
type Model struct {
	ctx    context.Context
	binder *viewstate.Binder
	repo   domain.RosterRepository
	log    logging.Logger

	theme      theme.Theme
	keys       keyMap
	promptKeys promptKeys
	help       help.Model
	viewport   viewport.Model
	prompt     textinput.Model
	prompting  bool

	width  int
	height int

	matchup  domain.Matchup
	loaded   bool
	selected render.Selection

	errorHandler *errors.TUIHandler
	status       string
	statusType   errors.MessageType
	statusSeq    int
	statusTTL    time.Duration

	// startupNotice is set when loading the settings produced a status message.
	startupNotice bool

	cache   renderCache
	renders int
}

// renderCache keys the rendered body on everything it depends on.
type renderCache struct {
	valid    bool
	revision uint64
	width    int
	selected render.Selection
	loaded   bool

	folderLine string
	body       string
	offset     int
}

// NewModel creates the viewer model. The binder must already be loaded.
func NewModel(ctx context.Context, binder *viewstate.Binder, repo domain.RosterRepository) *Model {
	prompt := textinput.New()
	prompt.Prompt = "Folder: "
	prompt.Placeholder = "path to the game folder"
	prompt.CharLimit = 4096

	m := &Model{
		ctx:        ctx,
		binder:     binder,
		repo:       repo,
		log:        logging.GetGlobal().With("component", "tui"),
		theme:      theme.Default(),
		keys:       defaultKeyMap(),
		promptKeys: defaultPromptKeys(),
		help:       help.New(),
		viewport:   viewport.New(defaultViewportWidth, defaultViewportHeight),
		prompt:     prompt,
		width:      defaultViewportWidth,
		height:     defaultViewportHeight + chromeLines,
		selected:   render.Selection{Side: domain.TeamAllies},
		statusTTL:  statusClearDuration,
	}

	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg.Text
		m.statusType = msg.Type
		m.statusSeq++
	})

	m.startupNotice = errors.ReportLoad(m.errorHandler, binder.LoadResult())
	return m
}

// Init starts the roster load and schedules clearing any startup notice.
func (m *Model) Init() tea.Cmd {
	load := LoadMatchupCmd(m.ctx, m.repo)
	if !m.startupNotice {
		return load
	}
	return tea.Batch(load, m.clearStatusLater())
}

// clearStatusLater clears the current status message after statusTTL unless
// a newer message replaces it first.
func (m *Model) clearStatusLater() tea.Cmd {
	return clearStatusAfter(m.statusTTL, m.statusSeq)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)
	case matchupLoadedMsg:
		return m.handleMatchupLoaded(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.binder.Resize(msg.Width, msg.Height) {
		cmd = m.reportSave()
	}
	if msg.Width > 0 {
		m.width = msg.Width
	}
	if msg.Height > 0 {
		m.height = msg.Height
	}
	m.layout()
	m.refresh()
	return m, cmd
}

// layout sizes the viewport to the space left by the header, folder line,
// status line and help.
func (m *Model) layout() {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = lipgloss.Height(m.help.View(m.keys))
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeLines-helpLines+1, 1)
	m.help.Width = m.width
	m.prompt.Width = max(m.width-len(m.prompt.Prompt)-1, 1)
}

func (m *Model) handleMatchupLoaded(msg matchupLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("failed to load roster", "error", msg.err)
		m.errorHandler.Error(fmt.Sprintf("Failed to load players: %v", msg.err))
		return m, m.clearStatusLater()
	}
	m.matchup = msg.matchup
	m.loaded = true
	m.selected = render.Selection{Side: domain.TeamAllies}
	if len(m.matchup.Allies.Players) == 0 && len(m.matchup.Enemies.Players) > 0 {
		m.selected.Side = domain.TeamEnemies
	}
	m.refresh()
	return m, nil
}

// reportSave surfaces a failed save in the status line.
func (m *Model) reportSave() tea.Cmd {
	result, ok := m.binder.LastSaveResult()
	if !ok || !errors.ReportSave(m.errorHandler, result) {
		return nil
	}
	return m.clearStatusLater()
}

// pickFolder applies a submitted folder path through the binder.
func (m *Model) pickFolder(path string) tea.Cmd {
	if !m.binder.PickFolder(path) {
		return nil
	}
	if cmd := m.reportSave(); cmd != nil {
		return cmd
	}

	folder, _ := m.binder.Folder()
	switch {
	case !m.binder.FolderExists():
		m.errorHandler.Warning(fmt.Sprintf("Folder does not exist: %s", folder))
	default:
		if replays, ok := settings.ReplayDir(m.binder.Settings()); ok {
			m.errorHandler.Success(fmt.Sprintf("Replays found in %s", replays))
		} else {
			m.errorHandler.Info(fmt.Sprintf("Folder set to %s (no replays directory)", folder))
		}
	}
	return m.clearStatusLater()
}

// selectedPlayer returns the player under the cursor.
func (m *Model) selectedPlayer() (domain.Player, bool) {
	players := m.team(m.selected.Side).Players
	if m.selected.Index < 0 || m.selected.Index >= len(players) {
		return domain.Player{}, false
	}
	return players[m.selected.Index], true
}

func (m *Model) team(side domain.TeamSide) domain.Team {
	if side == domain.TeamEnemies {
		return m.matchup.Enemies
	}
	return m.matchup.Allies
}

// Selected returns the current selection.
func (m *Model) Selected() render.Selection {
	return m.selected
}

// Status returns the current status line text and its type.
func (m *Model) Status() (string, errors.MessageType) {
	return m.status, m.statusType
}

// Prompting reports whether the folder prompt is open.
func (m *Model) Prompting() bool {
	return m.prompting
}
