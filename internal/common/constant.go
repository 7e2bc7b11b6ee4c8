// Package common contains shared constants and sentinel errors used across
// Divergent Flow client components.
package common

// Header names attached to every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
	CacheControlHeaderName  = "Cache-Control"
	PragmaHeaderName        = "Pragma"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
	NoCache         = "no-cache"
)
