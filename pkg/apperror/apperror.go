// Package apperror defines the failure categories every inventory and session operation reports.
//
// Each category maps to a stable gRPC code and HTTP status. Message is safe to show to clients;
// the wrapped error is only for logs.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidArgument
	KindInvalidCredential
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindInvalidCredential:
		return "InvalidCredential"
	case KindStorageFailure:
		return "StorageFailure"
	case KindUnknown:
	}

	return "Unknown"
}

const ValidationFailedMessage = "Invalid data provided - Validation failed."

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential}
	ErrStorageFailure    = &Error{Kind: KindStorageFailure}
)

type Error struct {
	Kind    Kind
	Message string
	// Rejected marks a storage failure caused by the store refusing the data rather than being
	// unavailable.
	Rejected bool
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}

	return other.Message == "" && other.Kind == e.Kind
}

func (e *Error) Code() codes.Code {
	switch e.Kind {
	case KindNotFound:
		return codes.NotFound
	case KindInvalidArgument:
		return codes.InvalidArgument
	case KindInvalidCredential:
		return codes.Unauthenticated
	case KindStorageFailure:
		if e.Rejected {
			return codes.FailedPrecondition
		}

		return codes.Unavailable
	case KindUnknown:
	}

	return codes.Unknown
}

func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code(), e.Message)
}

func (e *Error) HTTPStatus() int {
	return HTTPStatus(e.Code())
}

func HTTPStatus(code codes.Code) int {
	switch code { //nolint:exhaustive // everything else is a server error
	case codes.OK:
		return http.StatusOK
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidCredential(message string) *Error {
	return &Error{Kind: KindInvalidCredential, Message: message}
}

func StorageUnavailable(err error) *Error {
	return &Error{Kind: KindStorageFailure, Message: "Unable to query database.", Err: err}
}

func StorageRejected(err error) *Error {
	return &Error{Kind: KindStorageFailure, Message: ValidationFailedMessage, Rejected: true, Err: err}
}

// From returns err as an *Error, wrapping anything else as an unknown failure.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return &Error{Kind: KindUnknown, Message: "Internal server error", Err: err}
}
