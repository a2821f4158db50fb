package chat

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a generation failure. Classification happens exactly
// once, at the boundary where the model call fails; everything downstream
// (retry policy, user-facing message, HTTP status) switches on the kind
// instead of re-parsing message text.
type ErrorKind int

const (
	// KindUnknown is any failure that matches no other category.
	KindUnknown ErrorKind = iota

	// KindBadRequest is a malformed request or invalid credentials.
	// Not retryable: the same request would fail again.
	KindBadRequest

	// KindRateLimited is a 429-class rejection from the provider.
	KindRateLimited

	// KindPermission is a 403-class rejection.
	KindPermission

	// KindUnavailable is a 500/503-class server-side outage.
	KindUnavailable
)

// String implements Stringer for log output.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindRateLimited:
		return "rate_limited"
	case KindPermission:
		return "permission"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Retryable reports whether another attempt may succeed.
// Only bad requests abort immediately; transient provider trouble
// (rate limits, outages, anything unidentified) is worth retrying.
func (k ErrorKind) Retryable() bool {
	return k != KindBadRequest
}

// errorPatterns maps substrings in provider error text to kinds.
// Matched case-insensitively, first group wins.
//
// NOTE: string matching is used because Genkit and the underlying model SDKs
// do not expose typed errors for these failures. This is the single place in
// the codebase where error text is inspected.
var errorPatterns = []struct {
	kind     ErrorKind
	patterns []string
}{
	{KindBadRequest, []string{"400", "api_key", "api key", "bad request"}},
	{KindRateLimited, []string{"429", "rate limit", "quota exceeded", "too many requests"}},
	{KindPermission, []string{"403", "permission denied", "forbidden"}},
	{KindUnavailable, []string{"500", "502", "503", "504", "unavailable", "overloaded", "internal server error"}},
}

// ClassifyError determines the kind of a generation failure from the provider
// error. Returns KindUnknown for nil-safe unmatched errors.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	msg := strings.ToLower(err.Error())
	for _, group := range errorPatterns {
		for _, p := range group.patterns {
			if strings.Contains(msg, p) {
				return group.kind
			}
		}
	}
	return KindUnknown
}

// User-safe messages per failure category. The bad-request and unknown
// categories share the generic message: there is nothing actionable to tell
// the user beyond "the AI service did not answer".
const (
	msgRateLimited = "I'm receiving too many requests right now. Please try again in a moment."
	msgPermission  = "My system permissions are currently restricted. Please check the API key."
	msgUnavailable = "I am currently experiencing service outages. Please try again later."
	msgGeneric     = "AI service unavailable"
)

// GenerationError is the terminal failure of an answer generation, carrying
// the classified kind, the number of attempts made, and the underlying error.
type GenerationError struct {
	Kind     ErrorKind
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s) after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

// Unwrap exposes the underlying provider error for errors.Is/As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// UserMessage returns the user-safe text for this failure.
// The answer is never fabricated: callers surface this message alongside an
// error status, not as a successful response.
func (e *GenerationError) UserMessage() string {
	switch e.Kind {
	case KindRateLimited:
		return msgRateLimited
	case KindPermission:
		return msgPermission
	case KindUnavailable:
		return msgUnavailable
	default:
		return msgGeneric
	}
}
