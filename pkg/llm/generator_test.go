package llm

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyGenerator struct {
	failures int
	calls    int
	failWith error
}

func (f *flakyGenerator) Name() string { return "flaky" }

func (f *flakyGenerator) Generate(ctx context.Context, req Request) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		if f.failWith != nil {
			return "", f.failWith
		}
		return "", errors.New("temporarily unavailable")
	}
	return "ok", nil
}

func TestRetryingSucceedsAfterFailures(t *testing.T) {
	flaky := &flakyGenerator{failures: 2}
	r := NewRetrying(flaky, 3, time.Millisecond)

	text, err := r.Generate(context.Background(), Request{Call: "holistic"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, flaky.calls)
	assert.Equal(t, "flaky", r.Name())
}

func TestRetryingGivesUp(t *testing.T) {
	flaky := &flakyGenerator{failures: 10}
	r := NewRetrying(flaky, 2, time.Millisecond)

	_, err := r.Generate(context.Background(), Request{Call: "suggestions"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestions: failed after 2 attempts")
	assert.Equal(t, 2, flaky.calls)
}

func TestRetryingStopsOnCancel(t *testing.T) {
	flaky := &flakyGenerator{failures: 10}
	r := NewRetrying(flaky, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, Request{Call: "insight"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, flaky.calls)
}

func TestNewRetryingMinimumAttempts(t *testing.T) {
	flaky := &flakyGenerator{failures: 10}
	r := NewRetrying(flaky, 0, time.Millisecond)

	_, err := r.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 1, flaky.calls)
}

func TestRetryingSkipsPermanentStatus(t *testing.T) {
	flaky := &flakyGenerator{failures: 10, failWith: &StatusError{Code: 401, Body: "invalid x-api-key"}}
	r := NewRetrying(flaky, 4, time.Millisecond)

	_, err := r.Generate(context.Background(), Request{Call: CallHolistic})
	require.Error(t, err)
	assert.Equal(t, 1, flaky.calls)
	assert.Contains(t, err.Error(), "holistic: not retrying")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 401, statusErr.Code)
}

func TestRetryingRetriesTransientStatus(t *testing.T) {
	for _, code := range []int{408, 429, 500, 503} {
		flaky := &flakyGenerator{failures: 2, failWith: &StatusError{Code: code}}
		r := NewRetrying(flaky, 3, time.Millisecond)

		text, err := r.Generate(context.Background(), Request{Call: CallSuggestions})
		require.NoError(t, err, "status %d", code)
		assert.Equal(t, "ok", text)
		assert.Equal(t, 3, flaky.calls, "status %d", code)
	}
}

func TestStatusErrorPermanent(t *testing.T) {
	cases := map[int]bool{
		400: true,
		401: true,
		403: true,
		404: true,
		408: false,
		429: false,
		500: false,
		529: false,
	}
	for code, want := range cases {
		assert.Equal(t, want, (&StatusError{Code: code}).Permanent(), "status %d", code)
	}
}
