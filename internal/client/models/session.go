package models

import "time"

// Session is the authenticated state of the CLI.
type Session struct {
	Email  string
	UserID string

	// Subject is the token's "sub" claim, empty for opaque tokens.
	Subject string

	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time

	Token string
}

// Expired reports whether the token has an expiry at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
