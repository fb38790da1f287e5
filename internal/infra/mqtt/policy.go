package mqtt

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	PolicyConstant    = "constant"
	PolicyExponential = "exponential"

	DefaultRetryInterval    = 5 * time.Second
	DefaultMaxRetryInterval = time.Minute
)

type ReconnectConfig struct {
	Policy      string
	Interval    time.Duration
	MaxInterval time.Duration
}

// NewReconnectPolicy builds the wait policy between connection attempts.
// Neither policy ever gives up.
func NewReconnectPolicy(config ReconnectConfig) (backoff.BackOff, error) {
	if config.Interval <= 0 {
		config.Interval = DefaultRetryInterval
	}
	if config.MaxInterval <= 0 {
		config.MaxInterval = DefaultMaxRetryInterval
	}

	switch config.Policy {
	case "", PolicyConstant:
		return backoff.NewConstantBackOff(config.Interval), nil
	case PolicyExponential:
		return backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(config.Interval),
			backoff.WithMaxInterval(config.MaxInterval),
			backoff.WithMaxElapsedTime(0),
		), nil
	default:
		return nil, fmt.Errorf("unknown reconnect policy %q", config.Policy)
	}
}
