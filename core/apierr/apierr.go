package apierr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Kind classifies an API error into one of the taxonomy categories.
type Kind int

const (
	// KindValidation covers malformed identifiers and invalid payloads.
	KindValidation Kind = iota
	// KindNotFound covers lookups of absent resources.
	KindNotFound
	// KindConflict covers uniqueness collisions and parent mismatches.
	KindConflict
	// KindStore covers unexpected database failures.
	KindStore
)

// Error is the error type returned by services. It carries the taxonomy kind,
// the HTTP status code to answer with, and a client-safe message.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	// Err is the underlying cause. Only set for store failures; it is logged
	// but never sent to the client.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a 400 validation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: fiber.StatusBadRequest, Message: msg}
}

// NotFound returns a 404 not-found error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: fiber.StatusNotFound, Message: msg}
}

// Conflict returns a 409 conflict error (duplicate username/email).
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Code: fiber.StatusConflict, Message: msg}
}

// Mismatch returns a conflict error for a child resource addressed under the
// wrong parent. The comment routes answer these with 400 rather than 409.
func Mismatch(msg string) *Error {
	return &Error{Kind: KindConflict, Code: fiber.StatusBadRequest, Message: msg}
}

// Store wraps an unexpected database failure. The client only ever sees the
// generic message; the cause is preserved for logging.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Code: fiber.StatusInternalServerError, Message: "Database error!", Err: err}
}

// Respond writes the JSON error response for err and returns nil so Fiber does
// not apply its own error handling on top. Errors that are not *Error are
// treated as store failures. Store failures are logged with their cause.
func Respond(c *fiber.Ctx, l *zap.Logger, err error) error {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = Store(err)
	}
	if ae.Kind == KindStore {
		l.Error("Store operation failed", zap.Error(ae))
	}
	return c.Status(ae.Code).JSON(fiber.Map{"error": ae.Message})
}
