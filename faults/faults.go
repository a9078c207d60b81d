package faults

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a rejected operation. Every kind except StoreUnavailable is
// permanent for the given input; callers must not retry unmodified.
type Kind string

const (
	DomainRejected      Kind = "domain_rejected"
	AlreadyRegistered   Kind = "already_registered"
	AccountNotFound     Kind = "account_not_found"
	TicketNotFound      Kind = "ticket_not_found"
	TicketExpired       Kind = "ticket_expired"
	CodeMismatch        Kind = "code_mismatch"
	WeakPassword        Kind = "weak_password"
	ValidationFailed    Kind = "validation_failed"
	ReportNotFound      Kind = "report_not_found"
	ItemNotFound        Kind = "item_not_found"
	AppointmentNotFound Kind = "appointment_not_found"
	AlreadyDecided      Kind = "already_decided"
	DispatchFailed      Kind = "dispatch_failed"
	StoreUnavailable    Kind = "store_unavailable"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a persistence-layer failure as StoreUnavailable, the only
// retryable kind.
func Store(err error) *Error {
	return &Error{Kind: StoreUnavailable, Message: err.Error()}
}

// KindOf extracts the Kind of err, or empty when err is not a *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// HTTPStatus maps a failure to the HTTP status the API responds with.
func HTTPStatus(err error) int {
	var fe *Error
	if !errors.As(err, &fe) {
		return http.StatusInternalServerError
	}
	switch fe.Kind {
	case AccountNotFound, TicketNotFound, ReportNotFound, ItemNotFound, AppointmentNotFound:
		return http.StatusNotFound
	case CodeMismatch:
		return http.StatusUnauthorized
	case TicketExpired:
		return http.StatusForbidden
	case AlreadyRegistered, AlreadyDecided:
		return http.StatusConflict
	case DispatchFailed:
		return http.StatusBadGateway
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
