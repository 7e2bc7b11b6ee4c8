package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

// Mode toggles the neuro mode, or sets it when an argument is given.
// The choice is saved locally.
func (a *App) Mode(ctx context.Context, args []string) error {
	next := a.neuroMode.Toggle()
	if len(args) > 0 {
		m, ok := models.ParseNeuroMode(args[0])
		if !ok {
			return client.Precondition("Usage: mode [typical|divergent]")
		}
		next = m
	}

	a.neuroMode = next
	fmt.Fprintf(a.out, "Neuro mode: %s\n", next)

	return a.savePreferences(ctx)
}

// Theme shows the ui mode, or sets and saves it when an argument is given.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Theme: %s\n", a.uiMode)
		return nil
	}

	m, ok := models.ParseUIMode(args[0])
	if !ok {
		return client.Precondition("Usage: theme [light|dark]")
	}

	a.uiMode = m
	fmt.Fprintf(a.out, "Theme: %s\n", m)

	return a.savePreferences(ctx)
}

// Reset drops the saved preferences and goes back to the defaults.
func (a *App) Reset(ctx context.Context) error {
	p, err := a.prefs.Reset(ctx)
	if err != nil {
		return err
	}

	a.neuroMode, a.uiMode = p.NeuroMode, p.UIMode
	fmt.Fprintf(a.out, "Preferences reset: neuro mode %s, theme %s\n", p.NeuroMode, p.UIMode)
	return nil
}

func (a *App) savePreferences(ctx context.Context) error {
	return a.prefs.Save(ctx, models.Preferences{NeuroMode: a.neuroMode, UIMode: a.uiMode})
}
