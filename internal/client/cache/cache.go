// Package cache holds the client's in-memory user id cache.
package cache

import "sync"

// UserIDCache remembers the id of the most recently resolved email.
// It holds a single entry; Set replaces whatever was there.
type UserIDCache struct {
	mu     sync.Mutex
	email  string
	userID string
}

func NewUserIDCache() *UserIDCache {
	return &UserIDCache{}
}

// Get returns the cached id when email matches the cached email exactly.
func (c *UserIDCache) Get(email string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.userID == "" || c.email != email {
		return "", false
	}
	return c.userID, true
}

func (c *UserIDCache) Set(email, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.email = email
	c.userID = userID
}

// Current returns the cached id regardless of email.
func (c *UserIDCache) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.userID, c.userID != ""
}

func (c *UserIDCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.email = ""
	c.userID = ""
}
