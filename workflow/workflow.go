package workflow

import (
	"context"
	"time"
)

// Config holds the workflow trigger configuration
type Config struct {
	TriggerURL     string
	SubmitterEmail string // used when a request carries none
	Timeout        time.Duration

	// BreakerMaxFailures consecutive transport or 5xx failures open the
	// circuit for BreakerTimeout. Zero, the default, disables the breaker so
	// every configured trigger makes its POST.
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// TokenSource supplies the current access token, empty when not configured
type TokenSource interface {
	AccessToken() string
}

// Trigger abstracts starting an external workflow instance for a permit
type Trigger interface {
	Trigger(ctx context.Context, req TriggerRequest) Result
}
