package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors covering the closed set of generation failure kinds.
// Every error returned by a Model implementation wraps exactly one of these.
var (
	// ErrTimeout indicates the call exceeded its deadline.
	ErrTimeout = errors.New("generation timed out")

	// ErrRateLimited indicates the provider rejected the call for quota
	// or rate reasons. Retrying after a delay may succeed.
	ErrRateLimited = errors.New("generation rate limited")

	// ErrTransport indicates a network or provider-side failure.
	ErrTransport = errors.New("generation transport failure")

	// ErrInvalidResponse indicates the provider replied with content the
	// client could not use, such as an empty or malformed body.
	ErrInvalidResponse = errors.New("invalid generation response")
)

// Error kind identifiers recorded on step traces.
const (
	KindTimeout         = "timeout"
	KindRateLimited     = "rate_limited"
	KindTransport       = "transport"
	KindInvalidResponse = "invalid_response"
)

// KindOf returns the kind identifier for a classified error, or the empty
// string for nil. Unclassified errors report as transport failures.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrInvalidResponse):
		return KindInvalidResponse
	default:
		return KindTransport
	}
}

// Classify maps an arbitrary error onto one of the sentinel kinds. Errors
// already carrying a sentinel pass through unchanged. Context deadline and
// cancellation map to ErrTimeout; everything else is matched lexically
// against common provider failure messages, defaulting to ErrTransport.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTransport) || errors.Is(err, ErrInvalidResponse) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "rate limit", "rate_limit", "too many requests", "quota exceeded", "429"):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case containsAny(msg, "timeout", "timed out", "deadline exceeded"):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case containsAny(msg, "unmarshal", "malformed", "unexpected end of json", "no choices", "empty response", "missing content"):
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}

// ClassifyStatus maps an HTTP status code from a provider API onto a
// sentinel kind, wrapping the original error.
func ClassifyStatus(status int, err error) error {
	switch {
	case status == 408 || status == 504:
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case status == 429:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case status >= 500:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	case status >= 400:
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	default:
		return Classify(err)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
