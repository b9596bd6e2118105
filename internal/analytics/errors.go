package analytics

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies pipeline failures.
type Kind string

const (
	KindAuth              Kind = "auth"
	KindUpstreamMail      Kind = "upstream-mail"
	KindUpstreamDocuments Kind = "upstream-documents"
	KindUpstreamUsage     Kind = "upstream-usage"
	KindInternal          Kind = "internal"
)

var kindStatus = map[Kind]int{
	KindAuth:              http.StatusUnauthorized,
	KindUpstreamMail:      http.StatusBadGateway,
	KindUpstreamDocuments: http.StatusBadGateway,
	KindUpstreamUsage:     http.StatusBadGateway,
	KindInternal:          http.StatusInternalServerError,
}

var kindMessage = map[Kind]string{
	KindAuth:              "Authentication required",
	KindUpstreamMail:      "Mail service is unavailable",
	KindUpstreamDocuments: "Document store is unavailable",
	KindUpstreamUsage:     "Usage log is unavailable",
	KindInternal:          "Failed to build dashboard analytics",
}

// Error is a pipeline error tagged with its kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with kind and op.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(kind Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// UserMessage maps a kind to the message shown to the client.
func UserMessage(kind Kind) string {
	if msg, ok := kindMessage[kind]; ok {
		return msg
	}
	return kindMessage[KindInternal]
}
