package models

// NeuroMode selects how dense the CLI output is. It never reaches the server.
type NeuroMode string

const (
	NeuroModeTypical   NeuroMode = "typical"
	NeuroModeDivergent NeuroMode = "divergent"
)

// ParseNeuroMode returns the mode for s, or the typical mode and false when s
// is not a known value.
func ParseNeuroMode(s string) (NeuroMode, bool) {
	switch NeuroMode(s) {
	case NeuroModeTypical, NeuroModeDivergent:
		return NeuroMode(s), true
	default:
		return NeuroModeTypical, false
	}
}

// Toggle flips between the two modes.
func (m NeuroMode) Toggle() NeuroMode {
	if m == NeuroModeDivergent {
		return NeuroModeTypical
	}
	return NeuroModeDivergent
}

// UIMode is the light/dark preference.
type UIMode string

const (
	UIModeLight UIMode = "light"
	UIModeDark  UIMode = "dark"
)

func ParseUIMode(s string) (UIMode, bool) {
	switch UIMode(s) {
	case UIModeLight, UIModeDark:
		return UIMode(s), true
	default:
		return UIModeLight, false
	}
}
