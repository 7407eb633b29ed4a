// Package apperr defines the typed error taxonomy shared by services and
// handlers. Services return these errors; the single translator in Abort
// renders them as JSON responses. Unknown errors become 500s unchanged.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindInternal
)

// FieldErrors maps a field path to the ordered list of messages reported for it.
type FieldErrors map[string][]string

// Error is a classified failure carrying an HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  FieldErrors
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports field-level input errors. Always recoverable by the
// caller resubmitting, never a system fault.
func Validation(fields FieldErrors) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusUnprocessableEntity, Message: "validation failed", Fields: fields}
}

// Unauthenticated reports a missing or invalid identity.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindAuthentication, Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden reports a valid identity lacking rights over a resource.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindAuthorization, Status: http.StatusForbidden, Message: msg}
}

// NotFound reports a referenced entity being absent.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: resource + " not found"}
}

// Conflict reports an operation against state that no longer admits it.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: msg}
}

// Internal wraps an unexpected failure, typically from the persistence layer.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "internal server error", cause: err}
}

// Abort is the terminal error-to-response translator. Every handler funnels
// service failures through here; no stage does partial recovery.
func Abort(c *gin.Context, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = Internal(err)
	}
	_ = c.Error(err)
	if ae.Kind == KindValidation {
		c.AbortWithStatusJSON(ae.Status, gin.H{"errors": ae.Fields})
		return
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{"error": ae.Message})
}
