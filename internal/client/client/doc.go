// Package client contains the transport layer of the Divergent Flow CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see Client and its parts CaptureAPI,
//     UserAPI, VersionAPI) describing the remote capture service.
//  2. A concrete HTTP implementation (see HTTPClient). Every call goes through
//     Do, which composes the URL from the configured base URL, attaches the
//     JSON, cache-busting, request-id and bearer headers, and validates the
//     response body against a schema.Shape before returning it.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     preferences database, applying embedded goose migrations to SQLite.
//
// # Error Handling
//
// Every failure is an *Error whose Kind tells callers what went wrong:
// KindTransport (request never completed), KindAPI (non-2xx status, with
// Status and Detail), KindValidation (2xx body did not match the shape, with
// field diagnostics) or KindPrecondition (a local check failed before any
// request). The sentinels ErrUnavailable, ErrUnauthorized,
// ErrInvalidServerData and ErrPrecondition match the kinds with errors.Is.
//
// No call is retried and no response is cached. HTTPClient sets no timeout of
// its own; cancellation comes from the caller's context.
package client
