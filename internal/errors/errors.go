// Package errors classifies failures by their blast radius: some kill
// one modality, some kill the session, most die with the tick that
// caused them.
package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is the failure category.
type Kind int

const (
	// Unknown covers everything not classified below.
	Unknown Kind = iota

	// ModelUnavailable means the expression classifier cannot serve.
	// Fatal to visual extraction only; vocal and transport continue.
	ModelUnavailable

	// MediaAccessDenied means a capture device refused access. Fatal
	// to that modality only.
	MediaAccessDenied

	// Transport means the session connection errored. Terminal for the
	// session; triggers full teardown.
	Transport

	// MalformedFrame means an unexpected payload shape on either
	// direction. Dropped with a warning, never tears the session down.
	MalformedFrame

	// Timeout means a per-call deadline elapsed. Retryable.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case ModelUnavailable:
		return "MODEL_UNAVAILABLE"
	case MediaAccessDenied:
		return "MEDIA_ACCESS_DENIED"
	case Transport:
		return "TRANSPORT"
	case MalformedFrame:
		return "MALFORMED_FRAME"
	case Timeout:
		return "TIMEOUT"
	}
	return "UNKNOWN"
}

// AppError carries a failure category alongside the message.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates an AppError with the given kind and message.
func New(kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

// Newf creates an AppError with a formatted message.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error.
func Wrap(err error, kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg, Cause: err}
}

// FromGRPC classifies a classifier RPC error by its status code.
func FromGRPC(err error) *AppError {
	st, ok := status.FromError(err)
	if !ok {
		return &AppError{Kind: Unknown, Message: err.Error(), Cause: err}
	}
	kind := Unknown
	switch st.Code() {
	case codes.Unavailable, codes.FailedPrecondition:
		kind = ModelUnavailable
	case codes.DeadlineExceeded, codes.Canceled:
		kind = Timeout
	case codes.InvalidArgument:
		kind = MalformedFrame
	}
	return &AppError{Kind: kind, Message: st.Message(), Cause: err}
}

// IsKind checks whether an error has a specific kind.
func IsKind(err error, kind Kind) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind == kind
	}
	return false
}

// IsRetryable reports whether the failure may clear on its own.
func IsRetryable(err error) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	return appErr.Kind == Timeout || appErr.Kind == ModelUnavailable
}
