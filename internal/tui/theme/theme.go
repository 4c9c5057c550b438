// Package theme holds the viewer palette and maps semantic tones to styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// Palette colours.
const (
	Text       = lipgloss.Color("#E6E6E6")
	Gray       = lipgloss.Color("#B3B3B3")
	Orange     = lipgloss.Color("#FFA500")
	Red        = lipgloss.Color("#CC3333")
	Green      = lipgloss.Color("#66FF00")
	Background = lipgloss.Color("#2B2D31")
	Card       = lipgloss.Color("#35373C")
	Black      = lipgloss.Color("#1A1B1E")
)

// Theme is the set of styles used by the renderer.
type Theme struct {
	Base      lipgloss.Style
	Name      lipgloss.Style
	Label     lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Heading   lipgloss.Style
	Help      lipgloss.Style
	Muted     lipgloss.Style
	neutral   lipgloss.Style
	positive  lipgloss.Style
	negative  lipgloss.Style
	highlight lipgloss.Style
}

// Default returns the dark card theme.
func Default() Theme {
	base := lipgloss.NewStyle().Foreground(Text)
	return Theme{
		Base:  base,
		Name:  base.Bold(true),
		Label: lipgloss.NewStyle().Foreground(Gray),
		Card: lipgloss.NewStyle().
			Background(Card).
			Padding(0, 1).
			Border(lipgloss.HiddenBorder()),
		Selected: lipgloss.NewStyle().
			Background(Card).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Orange),
		Heading:   base.Bold(true).Underline(true),
		Help:      lipgloss.NewStyle().Foreground(Gray),
		Muted:     lipgloss.NewStyle().Foreground(Gray).Italic(true),
		neutral:   base,
		positive:  lipgloss.NewStyle().Foreground(Green),
		negative:  lipgloss.NewStyle().Foreground(Red),
		highlight: lipgloss.NewStyle().Foreground(Orange),
	}
}

// Tone returns the style for a semantic tone. Unknown tones render neutral.
func (t Theme) Tone(tone domain.Tone) lipgloss.Style {
	switch tone {
	case domain.TonePositive:
		return t.positive
	case domain.ToneNegative:
		return t.negative
	case domain.ToneHighlight:
		return t.highlight
	default:
		return t.neutral
	}
}

// ToneColor returns the foreground colour used for tone.
func ToneColor(tone domain.Tone) lipgloss.Color {
	switch tone {
	case domain.TonePositive:
		return Green
	case domain.ToneNegative:
		return Red
	case domain.ToneHighlight:
		return Orange
	default:
		return Text
	}
}
