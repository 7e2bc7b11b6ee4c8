// Package services contains application services for the Divergent Flow
// client. They sit between the CLI and the API client: they enforce local
// preconditions (non-empty text, a live session) before any request is made
// and wrap API errors with the operation that failed, leaving the error kind
// intact for the CLI to describe.
package services
