package state

import (
	"strings"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/errors"
	"github.com/okay-you-very-pro/oyvp/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	m.refresh()

	var s strings.Builder
	s.WriteString(render.Header(m.theme, m.width))
	s.WriteString("\n")
	if m.prompting {
		s.WriteString(m.prompt.View())
	} else {
		s.WriteString(m.cache.folderLine)
	}
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(render.StatusLine(render.StatusState{
		Text:  m.status,
		Tone:  statusTone(m.statusType),
		Width: m.width,
		Theme: m.theme,
	}))
	s.WriteString("\n")
	if m.prompting {
		s.WriteString(m.help.View(m.promptKeys))
	} else {
		s.WriteString(m.help.View(m.keys))
	}
	return s.String()
}

// refresh rebuilds the cached folder line and body when the binder revision,
// terminal width, selection, or roster changed since the last build.
func (m *Model) refresh() {
	revision := m.binder.Revision()
	if m.cache.valid &&
		m.cache.revision == revision &&
		m.cache.width == m.width &&
		m.cache.selected == m.selected &&
		m.cache.loaded == m.loaded {
		return
	}

	folder, hasFolder := m.binder.Folder()
	m.cache.folderLine = render.FolderLine(render.FolderState{
		Folder:    folder,
		HasFolder: hasFolder,
		Accent:    m.binder.Accent(),
		Width:     m.width,
		Theme:     m.theme,
	})

	if m.loaded {
		m.cache.body, m.cache.offset = render.Body(render.BodyState{
			Matchup:  m.matchup,
			Width:    m.width,
			Selected: m.selected,
			Theme:    m.theme,
		})
	} else {
		m.cache.body, m.cache.offset = m.theme.Muted.Render("Loading players..."), 0
	}

	m.cache.valid = true
	m.cache.revision = revision
	m.cache.width = m.width
	m.cache.selected = m.selected
	m.cache.loaded = m.loaded
	m.renders++

	m.viewport.SetContent(m.cache.body)
	m.ensureSelectionVisible()
}

// ensureSelectionVisible scrolls so the selected card's first line is on screen.
func (m *Model) ensureSelectionVisible() {
	offset := m.cache.offset
	if offset < m.viewport.YOffset || offset >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(offset)
	}
}

func statusTone(t errors.MessageType) domain.Tone {
	switch t {
	case errors.MessageTypeError:
		return domain.ToneNegative
	case errors.MessageTypeWarning:
		return domain.ToneHighlight
	case errors.MessageTypeSuccess:
		return domain.TonePositive
	default:
		return domain.ToneNeutral
	}
}
