package models

// Preferences are the locally saved presentation settings.
type Preferences struct {
	NeuroMode NeuroMode
	UIMode    UIMode
}

// DefaultPreferences is what a fresh install starts with.
func DefaultPreferences() Preferences {
	return Preferences{NeuroMode: NeuroModeTypical, UIMode: UIModeLight}
}
