package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/divergentflow/internal/client/cache"
	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

// UserService resolves users by email and remembers the last resolved id.
type UserService interface {
	GetUserByEmail(ctx context.Context, email, token string) (*models.User, error)

	// GetUserIDByEmail serves the id from the cache when email matches the
	// cached email exactly; otherwise it fetches the user and replaces the
	// cached entry.
	GetUserIDByEmail(ctx context.Context, email, token string) (string, error)

	ClearCache()

	// CachedUserID returns the cached id without touching the network.
	CachedUserID() (string, bool)
}

type userService struct {
	api   client.UserAPI
	cache *cache.UserIDCache
}

// NewUserService builds a UserService over api. The cache is owned by the
// caller, which decides when it is cleared.
func NewUserService(api client.UserAPI, c *cache.UserIDCache) UserService {
	return &userService{api: api, cache: c}
}

func (s *userService) GetUserByEmail(ctx context.Context, email, token string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, client.Precondition("email is required")
	}
	u, err := s.api.GetUserByEmail(ctx, email, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

func (s *userService) GetUserIDByEmail(ctx context.Context, email, token string) (string, error) {
	if id, ok := s.cache.Get(email); ok {
		return id, nil
	}

	u, err := s.GetUserByEmail(ctx, email, token)
	if err != nil {
		return "", err
	}

	s.cache.Set(email, u.ID)
	return u.ID, nil
}

func (s *userService) ClearCache() {
	s.cache.Clear()
}

func (s *userService) CachedUserID() (string, bool) {
	return s.cache.Current()
}
