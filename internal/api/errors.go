package api

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// OfflineMessage is the user-facing text carried by offline errors.
const OfflineMessage = "You are offline!"

// offlineCode is the extensions.code a server uses to flag connectivity loss.
const offlineCode = "OFFLINE"

var (
	ErrNoEndpoint     = errors.New("GraphQL endpoint not configured")
	ErrStoryNotFound  = errors.New("story not found")
	ErrEmptyResponse  = errors.New("empty GraphQL response")
	ErrNotRemoved     = errors.New("bookmark was not removed")
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorKind classifies a failed GraphQL call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindOffline           // no connection to the API
	KindGraphQL           // the server answered with GraphQL errors
	KindHTTP              // unexpected HTTP status
	KindDecode            // malformed response body
)

func (k ErrorKind) String() string {
	switch k {
	case KindOffline:
		return "offline"
	case KindGraphQL:
		return "graphql"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by Client for every failed operation except
// configuration and context errors.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsOffline reports whether err was caused by lost connectivity.
func IsOffline(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindOffline
}

// KindOf returns the kind of err, or KindUnknown if it is not an *Error.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// classifyTransportError maps a failed http.Client.Do call onto an Error.
// Context cancellation is passed through untouched.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	var netErr net.Error
	switch {
	case errors.As(err, &dnsErr),
		errors.As(err, &opErr) && opErr.Op == "dial",
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ENETUNREACH):
		return &Error{
			Kind:    KindOffline,
			Message: "Network error: " + OfflineMessage,
			Err:     err,
		}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		// Connected but too slow to answer: the server is the problem.
		return &Error{Kind: KindHTTP, Message: "Network error: request timed out", Err: err}
	default:
		return &Error{Kind: KindHTTP, Message: "Network error: " + err.Error(), Err: err}
	}
}

// classifyGraphQLErrors folds the errors array of a response into one Error.
// Servers fronted by an offline-aware gateway only phrase the condition in
// the message, so both the code and the text are honoured here and nowhere
// else.
func classifyGraphQLErrors(errs []gqlError) *Error {
	kind := KindGraphQL
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
		if e.Extensions.Code == offlineCode || strings.Contains(e.Message, OfflineMessage) {
			kind = KindOffline
		}
	}
	return &Error{
		Kind:    kind,
		Message: "[GraphQL] " + strings.Join(messages, "; "),
	}
}
