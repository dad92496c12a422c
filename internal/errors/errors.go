package errors

import (
	"errors"
	"fmt"
)

// This package defines a centralized set of sentinel errors for the
// application. Services return these recognizable error values (wrapped with
// fmt.Errorf and %w where extra context helps), and callers branch on them
// with errors.Is without coupling to implementation details.

var (
	// ErrAuthRequired signifies that the caller is not signed in. The
	// operation is refused before any side effect takes place.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation signifies that a candidate file failed the client-side
	// admission policy. It never reaches the network.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedFormat is a validation failure for a file whose
	// extension is not admitted by the policy.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file format", ErrValidation)

	// ErrFileTooLarge is a validation failure for a file exceeding the
	// policy's byte limit.
	ErrFileTooLarge = fmt.Errorf("%w: file too large", ErrValidation)

	// ErrPayloadTooLarge signifies that the server rejected an upload with
	// HTTP 413. The server's detail message is carried alongside so it can
	// be surfaced verbatim.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrUpstream signifies any other failure of a call to the assistant
	// API: a non-2xx status or a transport error. It is recovered locally
	// and rendered as a bot message, never escalated.
	ErrUpstream = errors.New("upstream request failed")

	// ErrMalformedResponse signifies that an upstream response decoded but
	// is missing a required field.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrBusy signifies that a submission is already in flight. At most one
	// submission may be active per session.
	ErrBusy = errors.New("a submission is already in flight")

	// ErrNotFound signifies that a requested resource could not be located.
	ErrNotFound = errors.New("resource not found")
)
