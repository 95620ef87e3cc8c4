package llm

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Call names used in Request.Call.
const (
	CallHolistic      = "holistic"
	CallSuggestions   = "suggestions"
	CallCompatibility = "compatibility"
	CallInsight       = "insight"
)

// Request is a single call to a text generator.
type Request struct {
	// Call names the call site for logging (holistic, suggestions, compatibility, insight).
	Call      string
	System    string
	Prompt    string
	JSON      bool
	MaxTokens int
}

// Generator produces free text for a prompt. Implementations are untrusted: callers must
// validate anything numeric they read from the returned text.
type Generator interface {
	Generate(ctx context.Context, req Request) (text string, err error)
	Name() string
}

// Retrying wraps a Generator with bounded retries and exponential backoff.
type Retrying struct {
	next     Generator
	attempts int
	backoff  time.Duration
}

// NewRetrying creates a retrying generator. attempts below 1 means a single try.
func NewRetrying(next Generator, attempts int, backoff time.Duration) (r *Retrying) {
	if attempts < 1 {
		attempts = 1
	}
	r = &Retrying{
		next:     next,
		attempts: attempts,
		backoff:  backoff,
	}
	return r
}

// Name returns the wrapped generator's name.
func (r *Retrying) Name() (name string) {
	name = r.next.Name()
	return name
}

// Generate calls the wrapped generator until it succeeds, attempts run out, or ctx ends.
// A permanent StatusError is returned at once.
func (r *Retrying) Generate(ctx context.Context, req Request) (text string, err error) {
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			wait := r.backoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				err = errors.Wrapf(ctx.Err(), "%s: gave up after %d attempts", req.Call, attempt)
				return text, err
			case <-time.After(wait):
			}
		}

		text, err = r.next.Generate(ctx, req)
		if err == nil {
			return text, err
		}
		if permanent(err) {
			err = errors.Wrapf(err, "%s: not retrying", req.Call)
			return text, err
		}
	}

	err = errors.Wrapf(err, "%s: failed after %d attempts", req.Call, r.attempts)
	return text, err
}

func permanent(err error) (ok bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		ok = statusErr.Permanent()
	}
	return ok
}
