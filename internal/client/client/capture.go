package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/schema"
)

const capturePath = "/v1/capture"

func (c *HTTPClient) CreateCapture(ctx context.Context, req models.CreateCaptureRequest, token string) (*models.Capture, error) {
	capture, err := Do(ctx, c, capturePath, CaptureShape, RequestOptions{Method: http.MethodPost, Body: req, Token: token})
	if err != nil {
		return nil, err
	}
	return &capture, nil
}

// ListCapturesByUser lists the captures of userID. The migrated query
// parameter is sent only when migrated is non-nil.
func (c *HTTPClient) ListCapturesByUser(ctx context.Context, userID string, token string, migrated *bool) ([]models.Capture, error) {
	path := capturePath + "/user/" + escapeSegment(userID) + migratedQuery(migrated)
	return Do(ctx, c, path, CaptureListShape, RequestOptions{Method: http.MethodGet, Token: token})
}

// ListCapturesByEmail is ListCapturesByUser keyed by the owner's email.
func (c *HTTPClient) ListCapturesByEmail(ctx context.Context, email string, token string, migrated *bool) ([]models.Capture, error) {
	path := capturePath + "/user/email/" + escapeSegment(email) + migratedQuery(migrated)
	return Do(ctx, c, path, CaptureListShape, RequestOptions{Method: http.MethodGet, Token: token})
}

func (c *HTTPClient) UpdateCapture(ctx context.Context, req models.UpdateCaptureRequest, token string) (*models.Capture, error) {
	path := capturePath + "/" + escapeSegment(req.ID)
	capture, err := Do(ctx, c, path, CaptureShape, RequestOptions{Method: http.MethodPut, Body: req, Token: token})
	if err != nil {
		return nil, err
	}
	return &capture, nil
}

func (c *HTTPClient) DeleteCapture(ctx context.Context, id string, token string) error {
	path := capturePath + "/" + escapeSegment(id)
	_, err := Do(ctx, c, path, schema.Empty, RequestOptions{Method: http.MethodDelete, Token: token})
	return err
}

func migratedQuery(migrated *bool) string {
	if migrated == nil {
		return ""
	}
	q := url.Values{}
	q.Set("migrated", strconv.FormatBool(*migrated))
	return "?" + q.Encode()
}
