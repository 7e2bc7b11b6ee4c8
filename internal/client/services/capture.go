package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/common"
	"golang.org/x/sync/errgroup"
)

const (
	msgEmptyText    = "Capture text cannot be empty"
	msgNoValidLines = "No valid captures found"
	msgMissingID    = "capture id is required"
)

// CaptureService is the capture workflow used by the CLI.
//
// Text is trimmed before it is sent; blank text, a missing id, or a missing
// session fail with a precondition error and no request is made.
type CaptureService interface {
	Create(ctx context.Context, userID, text, token string) (*models.Capture, error)

	// CreateBatch creates one capture per non-blank line of text, concurrently.
	// Every line gets an item in the result; a failed line does not cancel
	// the others and nothing is rolled back.
	CreateBatch(ctx context.Context, userID, text, token string) (models.BatchResult, error)

	ListByUser(ctx context.Context, userID, token string, migrated *bool) ([]models.Capture, error)
	ListByEmail(ctx context.Context, email, token string, migrated *bool) ([]models.Capture, error)
	Update(ctx context.Context, id, userID, text, token string) (*models.Capture, error)
	Delete(ctx context.Context, id, token string) error
}

type captureService struct {
	api client.CaptureAPI
}

func NewCaptureService(api client.CaptureAPI) CaptureService {
	return &captureService{api: api}
}

func requireSession(userID, token string) error {
	if userID == "" || token == "" {
		return client.PreconditionFrom(common.ErrNotLoggedIn)
	}
	return nil
}

func (s *captureService) Create(ctx context.Context, userID, text, token string) (*models.Capture, error) {
	if err := requireSession(userID, token); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, client.Precondition(msgEmptyText)
	}

	c, err := s.api.CreateCapture(ctx, models.CreateCaptureRequest{UserID: userID, RawText: text}, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create capture: %w", err)
	}
	return c, nil
}

// SplitLines returns the trimmed, non-blank lines of text.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (s *captureService) CreateBatch(ctx context.Context, userID, text, token string) (models.BatchResult, error) {
	if err := requireSession(userID, token); err != nil {
		return models.BatchResult{}, err
	}

	lines := SplitLines(text)
	if len(lines) == 0 {
		return models.BatchResult{}, client.Precondition(msgNoValidLines)
	}

	items := make([]models.BatchItem, len(lines))

	var g errgroup.Group
	for i, line := range lines {
		items[i] = models.BatchItem{Index: i, Text: line}
		g.Go(func() error {
			c, err := s.api.CreateCapture(ctx, models.CreateCaptureRequest{UserID: userID, RawText: line}, token)
			if err != nil {
				items[i].Err = fmt.Errorf("failed to create capture: %w", err)
				return nil
			}
			items[i].Capture = c
			return nil
		})
	}
	_ = g.Wait()

	return models.BatchResult{Items: items}, nil
}

func (s *captureService) ListByUser(ctx context.Context, userID, token string, migrated *bool) ([]models.Capture, error) {
	if err := requireSession(userID, token); err != nil {
		return nil, err
	}
	list, err := s.api.ListCapturesByUser(ctx, userID, token, migrated)
	if err != nil {
		return nil, fmt.Errorf("failed to list captures: %w", err)
	}
	return list, nil
}

func (s *captureService) ListByEmail(ctx context.Context, email, token string, migrated *bool) ([]models.Capture, error) {
	if err := requireSession(email, token); err != nil {
		return nil, err
	}
	list, err := s.api.ListCapturesByEmail(ctx, email, token, migrated)
	if err != nil {
		return nil, fmt.Errorf("failed to list captures: %w", err)
	}
	return list, nil
}

func (s *captureService) Update(ctx context.Context, id, userID, text, token string) (*models.Capture, error) {
	if err := requireSession(userID, token); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, client.Precondition(msgMissingID)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, client.Precondition(msgEmptyText)
	}

	c, err := s.api.UpdateCapture(ctx, models.UpdateCaptureRequest{ID: id, UserID: userID, RawText: text}, token)
	if err != nil {
		return nil, fmt.Errorf("failed to update capture: %w", err)
	}
	return c, nil
}

func (s *captureService) Delete(ctx context.Context, id, token string) error {
	if token == "" {
		return client.PreconditionFrom(common.ErrNotLoggedIn)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return client.Precondition(msgMissingID)
	}

	if err := s.api.DeleteCapture(ctx, id, token); err != nil {
		return fmt.Errorf("failed to delete capture: %w", err)
	}
	return nil
}
