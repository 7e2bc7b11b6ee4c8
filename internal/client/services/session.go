package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService keeps the bearer token the CLI authenticates with.
//
// Tokens are issued by the identity provider and verified by the API; the
// client only reads their claims (sub, email, exp) to learn who is logged in
// and when the session ends.
type SessionService interface {
	// Login inspects token, resolves the user id for email and stores the
	// session. An empty email falls back to the token's email claim.
	// The token buffer is wiped before Login returns.
	Login(ctx context.Context, email string, token []byte) (*models.Session, error)

	// Logout forgets the session and the cached user id.
	Logout()

	// Current returns the live session, or a precondition error when nobody
	// is logged in or the token has expired.
	Current() (*models.Session, error)
}

type sessionService struct {
	users UserService
	now   func() time.Time

	mu      sync.Mutex
	session *models.Session
}

func NewSessionService(users UserService) SessionService {
	return &sessionService{users: users, now: time.Now}
}

type tokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// parseClaims reads the claims of a JWT without verifying its signature.
// Tokens that are not JWTs are accepted as opaque and yield no claims.
func parseClaims(token string) (tokenClaims, error) {
	if strings.Count(token, ".") != 2 {
		return tokenClaims{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	var out tokenClaims
	out.Subject, _ = claims.GetSubject()
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return tokenClaims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func (s *sessionService) Login(ctx context.Context, email string, token []byte) (*models.Session, error) {
	raw := strings.TrimSpace(string(token))
	common.WipeByteArray(token)

	if raw == "" {
		return nil, client.Precondition("token is required")
	}

	claims, err := parseClaims(raw)
	if err != nil {
		return nil, client.PreconditionFrom(err)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		email = claims.Email
	}
	if email == "" {
		return nil, client.Precondition("email is required")
	}

	sess := &models.Session{Email: email, Subject: claims.Subject, ExpiresAt: claims.ExpiresAt, Token: raw}
	if sess.Expired(s.now()) {
		return nil, client.PreconditionFrom(common.ErrTokenExpired)
	}

	s.mu.Lock()
	prev := s.session
	s.mu.Unlock()
	if prev == nil || prev.Email != email {
		s.users.ClearCache()
	}

	userID, err := s.users.GetUserIDByEmail(ctx, email, raw)
	if client.StatusOf(err) == http.StatusNotFound {
		return nil, client.Precondition(fmt.Sprintf("No account found for %s", email))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	sess.UserID = userID

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	out := *sess
	return &out, nil
}

func (s *sessionService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.users.ClearCache()
}

func (s *sessionService) Current() (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, client.PreconditionFrom(common.ErrNotLoggedIn)
	}
	if s.session.Expired(s.now()) {
		return nil, client.PreconditionFrom(common.ErrTokenExpired)
	}
	out := *s.session
	return &out, nil
}

// IsSessionError reports whether err means the user has to log in again.
func IsSessionError(err error) bool {
	return errors.Is(err, common.ErrNotLoggedIn) || errors.Is(err, common.ErrTokenExpired) ||
		errors.Is(err, client.ErrUnauthorized)
}
