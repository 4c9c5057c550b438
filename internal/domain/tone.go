// Package domain provides the value types shared by the roster, view state
// and rendering layers.
package domain

// Tone is the semantic state a styled value is rendered in. Styles are
// chosen by Tone, never by comparing colours.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
	// ToneHighlight marks figures shown in the accent colour regardless of value.
	ToneHighlight
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	case ToneHighlight:
		return "highlight"
	default:
		return "neutral"
	}
}
