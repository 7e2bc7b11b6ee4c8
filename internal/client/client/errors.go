package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/divergentflow/internal/client/schema"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidServerData = errors.New("received invalid data from server")
	ErrPrecondition      = errors.New("precondition failed")
)

// Kind classifies an *Error.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindAPI          Kind = "api"
	KindValidation   Kind = "validation"
	KindPrecondition Kind = "precondition"
)

// Error is the single error type returned by the transport layer. Which of
// the payload fields are set depends on Kind.
type Error struct {
	Kind   Kind
	Method string
	Path   string

	// Status is the HTTP status code (KindAPI, KindValidation).
	Status int

	// Detail is the server supplied error text (KindAPI) or the message of a
	// failed local check (KindPrecondition).
	Detail string

	// Fields lists the failing fields (KindValidation).
	Fields []schema.FieldError

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("%s: %v", ErrUnavailable, e.Err)
	case KindAPI:
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	case KindValidation:
		return ErrInvalidServerData.Error()
	case KindPrecondition:
		return e.Detail
	default:
		return fmt.Sprintf("client error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets callers match kinds with the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindTransport
	case ErrUnauthorized:
		return e.Kind == KindAPI && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
	case ErrInvalidServerData:
		return e.Kind == KindValidation
	case ErrPrecondition:
		return e.Kind == KindPrecondition
	}
	return false
}

// Precondition returns a KindPrecondition error with msg as its text.
func Precondition(msg string) error {
	return &Error{Kind: KindPrecondition, Detail: msg}
}

// PreconditionFrom returns a KindPrecondition error that carries err's text
// and still matches err with errors.Is.
func PreconditionFrom(err error) error {
	return &Error{Kind: KindPrecondition, Detail: err.Error(), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
