package github

import (
	"errors"
	"fmt"
)

// Kind classifies a failed fetch.
type Kind int

const (
	InvalidURL Kind = iota + 1
	RequestFailed
	InvalidResponse
	NotFound
	NoData
	DecodingError
)

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "invalid url"
	case RequestFailed:
		return "request failed"
	case InvalidResponse:
		return "invalid response"
	case NotFound:
		return "not found"
	case NoData:
		return "no data"
	case DecodingError:
		return "decoding error"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *FetchError matches the sentinel of its Kind.
var (
	ErrInvalidURL      = errors.New("invalid url")
	ErrRequestFailed   = errors.New("request failed")
	ErrInvalidResponse = errors.New("invalid response")
	ErrNotFound        = errors.New("not found")
	ErrNoData          = errors.New("no data")
	ErrDecoding        = errors.New("decoding error")
)

var sentinels = map[Kind]error{
	InvalidURL:      ErrInvalidURL,
	RequestFailed:   ErrRequestFailed,
	InvalidResponse: ErrInvalidResponse,
	NotFound:        ErrNotFound,
	NoData:          ErrNoData,
	DecodingError:   ErrDecoding,
}

// FetchError is returned by every Client operation that fails.
type FetchError struct {
	Kind   Kind
	Op     string // e.g. "get user"
	Status int    // HTTP status, 0 when no response was received
	Err    error  // underlying cause, may be nil
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *FetchError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf returns the Kind of err, or 0 if err is not a *FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// IsNotFound reports whether err means the requested user or repository does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
