package llm

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrConfiguration
	ErrRemoteCall
	ErrEmptyResponse
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrConfiguration:
		return "invalid configuration"
	case ErrRemoteCall:
		return "remote call failed"
	case ErrEmptyResponse:
		return "empty response"
	}
	return fmt.Sprintf("error code %d", int(e))
}

// Name returns a short label for the error kind, suitable for metrics
func (e Err) Name() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not_found"
	case ErrBadParameter:
		return "bad_parameter"
	case ErrConfiguration:
		return "configuration"
	case ErrRemoteCall:
		return "remote_call"
	case ErrEmptyResponse:
		return "empty_response"
	}
	return "unknown"
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error of this kind which keeps err in the chain, so that
// errors.Is matches both the kind and the cause
func (e Err) Wrap(err error) error {
	if err == nil {
		return e
	}
	return fmt.Errorf("%w: %w", e, err)
}

// Kind returns the first Err found in the chain of err, or ErrSuccess when
// err is nil. An error without a kind is assumed to come from the transport
// and is reported as ErrRemoteCall. Errors raised while building a request,
// including those from caller options, are returned before anything is sent
// and are never observed.
func Kind(err error) Err {
	if err == nil {
		return ErrSuccess
	}
	var kind Err
	if errors.As(err, &kind) {
		return kind
	}
	return ErrRemoteCall
}
