package calendar

import "fmt"

// FailureKind categorizes why a feed URL could not be used.
type FailureKind string

const (
	FailureUnreachable   FailureKind = "unreachable"
	FailureNotFound      FailureKind = "not-found"
	FailureUnauthorized  FailureKind = "unauthorized"
	FailureInvalidFormat FailureKind = "invalid-format"
)

// Message is the user-facing text for the failure.
func (k FailureKind) Message() string {
	switch k {
	case FailureNotFound:
		return "Calendar not found. Check that the URL is correct."
	case FailureUnauthorized:
		return "Access denied. Make sure the calendar is public or the URL contains its private token."
	case FailureInvalidFormat:
		return "The URL did not return a valid iCalendar (ICS) file."
	default:
		return "Could not reach the calendar URL."
	}
}

// FeedError is returned by feed fetching when the cause matters to the caller.
type FeedError struct {
	Kind FailureKind
	Err  error
}

func (e *FeedError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FeedError) Unwrap() error { return e.Err }

// ValidationResult is the outcome of checking a candidate feed URL.
type ValidationResult struct {
	Valid      bool
	EventCount int
	Message    string
	Kind       FailureKind
	Error      string
}
