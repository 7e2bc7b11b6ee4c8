package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/repositories/preferences"
)

const (
	neuroModeKey = "neuroMode"
	uiModeKey    = "uiMode"
)

// PreferencesService loads and saves the presentation settings as one unit.
type PreferencesService interface {
	// Load returns the saved preferences. Missing or unknown stored values
	// read back as the defaults.
	Load(ctx context.Context) (models.Preferences, error)

	// Save validates p and writes both settings together.
	Save(ctx context.Context, p models.Preferences) error

	// Reset forgets every saved setting and returns the defaults.
	Reset(ctx context.Context) (models.Preferences, error)
}

type preferencesService struct {
	repo     preferences.Repository
	defaults models.Preferences
}

// NewPreferencesService returns a service over repo. defaultNeuro is used
// until a neuro mode has been saved; an invalid value means typical.
func NewPreferencesService(repo preferences.Repository, defaultNeuro models.NeuroMode) PreferencesService {
	d := models.DefaultPreferences()
	d.NeuroMode, _ = models.ParseNeuroMode(string(defaultNeuro))
	return &preferencesService{repo: repo, defaults: d}
}

func (s *preferencesService) Load(ctx context.Context) (models.Preferences, error) {
	p := s.defaults

	stored, err := s.repo.List(ctx)
	if err != nil {
		return p, fmt.Errorf("failed to load preferences: %w", err)
	}

	if v, ok := stored[neuroModeKey]; ok {
		if m, valid := models.ParseNeuroMode(v); valid {
			p.NeuroMode = m
		}
	}
	if v, ok := stored[uiModeKey]; ok {
		if m, valid := models.ParseUIMode(v); valid {
			p.UIMode = m
		}
	}
	return p, nil
}

func (s *preferencesService) Save(ctx context.Context, p models.Preferences) error {
	if _, ok := models.ParseNeuroMode(string(p.NeuroMode)); !ok {
		return fmt.Errorf("unknown neuro mode %q", p.NeuroMode)
	}
	if _, ok := models.ParseUIMode(string(p.UIMode)); !ok {
		return fmt.Errorf("unknown ui mode %q", p.UIMode)
	}

	err := s.repo.SetMany(ctx, map[string]string{
		neuroModeKey: string(p.NeuroMode),
		uiModeKey:    string(p.UIMode),
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (s *preferencesService) Reset(ctx context.Context) (models.Preferences, error) {
	if err := s.repo.Clear(ctx); err != nil {
		return s.defaults, fmt.Errorf("failed to reset preferences: %w", err)
	}
	return s.defaults, nil
}
