package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

// GetVersion fetches the deployed server build. It needs no token.
func (c *HTTPClient) GetVersion(ctx context.Context) (*models.VersionInfo, error) {
	v, err := Do(ctx, c, "/v1/version", VersionShape, RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	return &v, nil
}
