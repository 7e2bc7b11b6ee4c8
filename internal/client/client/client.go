package client

import (
	"context"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

type CaptureAPI interface {
	CreateCapture(ctx context.Context, req models.CreateCaptureRequest, token string) (*models.Capture, error)
	ListCapturesByUser(ctx context.Context, userID string, token string, migrated *bool) ([]models.Capture, error)
	ListCapturesByEmail(ctx context.Context, email string, token string, migrated *bool) ([]models.Capture, error)
	UpdateCapture(ctx context.Context, req models.UpdateCaptureRequest, token string) (*models.Capture, error)
	DeleteCapture(ctx context.Context, id string, token string) error
}

type UserAPI interface {
	GetUserByEmail(ctx context.Context, email string, token string) (*models.User, error)
}

type VersionAPI interface {
	GetVersion(ctx context.Context) (*models.VersionInfo, error)
}

// Client is everything the services need from the remote API.
type Client interface {
	CaptureAPI
	UserAPI
	VersionAPI
}

var _ Client = (*HTTPClient)(nil)

// Bool returns a pointer to v, for the optional migrated filter.
func Bool(v bool) *bool {
	return &v
}
