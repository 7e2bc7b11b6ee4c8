package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

func (c *HTTPClient) GetUserByEmail(ctx context.Context, email string, token string) (*models.User, error) {
	user, err := Do(ctx, c, "/v1/user/email/"+escapeSegment(email), UserShape, RequestOptions{Method: http.MethodGet, Token: token})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
