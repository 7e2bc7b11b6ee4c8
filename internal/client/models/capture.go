// Package models defines client-side data models used by the Divergent Flow CLI.
package models

import "time"

// Capture is a short user-authored text note stored by the API.
type Capture struct {
	// ID is assigned by the server and never changes.
	ID string `json:"id"`

	// UserID is the owning user; set at creation.
	UserID string `json:"userId"`

	// RawText is the note body. Never empty once persisted.
	RawText string `json:"rawText"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// MigratedDate is set once the capture has been moved downstream.
	MigratedDate *time.Time `json:"migratedDate,omitempty"`
}

// Migrated reports whether the capture has been picked up downstream.
func (c Capture) Migrated() bool {
	return c.MigratedDate != nil
}

type CreateCaptureRequest struct {
	UserID  string `json:"userId"`
	RawText string `json:"rawText"`
}

type UpdateCaptureRequest struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	RawText string `json:"rawText"`
}
