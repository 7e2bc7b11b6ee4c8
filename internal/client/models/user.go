package models

import "time"

// User is the account record returned by the user lookup endpoint.
type User struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Username      string         `json:"username"`
	EmailVerified bool           `json:"emailVerified"`
	Password      *string        `json:"password,omitempty"`
	LastLoginAt   *time.Time     `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Profile       *UserProfile   `json:"profile,omitempty"`
	OAuthAccounts []OAuthAccount `json:"oauthAccounts,omitempty"`
}

// DisplayName prefers the profile display name and falls back to the username.
func (u User) DisplayName() string {
	if u.Profile != nil && u.Profile.DisplayName != nil && *u.Profile.DisplayName != "" {
		return *u.Profile.DisplayName
	}
	return u.Username
}

type UserProfile struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	DisplayName *string        `json:"displayName,omitempty"`
	FirstName   *string        `json:"firstName,omitempty"`
	LastName    *string        `json:"lastName,omitempty"`
	AvatarURL   *string        `json:"avatarUrl,omitempty"`
	Bio         *string        `json:"bio,omitempty"`
	Timezone    *string        `json:"timezone,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type OAuthAccount struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Provider          string     `json:"provider"`
	ProviderAccountID string     `json:"providerAccountId"`
	TokenType         *string    `json:"tokenType,omitempty"`
	Scope             *string    `json:"scope,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
