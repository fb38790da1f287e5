package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"smokeguard-server/internal/infra/async"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

var (
	_connectionAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smokeguard_mqtt_connection_attempts_total",
		Help: "Broker connection attempts by outcome.",
	}, []string{"outcome"})

	_connected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smokeguard_mqtt_connected",
		Help: "1 while the broker connection is up.",
	})
)

type Subscription struct {
	Topic   string
	QoS     byte
	Handler MessageHandler
}

func NewSupervisor(session Session, policy backoff.BackOff, subscriptions []Subscription) *Supervisor {
	if policy == nil {
		policy = backoff.NewConstantBackOff(DefaultRetryInterval)
	}

	supervisor := &Supervisor{
		session:       session,
		policy:        policy,
		subscriptions: subscriptions,
		maxWait:       DefaultMaxRetryInterval,
		stop:          make(chan struct{}),
	}
	supervisor.state.Store(StateDisconnected)

	return supervisor
}

var _ async.Worker = &Supervisor{}

// Supervisor keeps one broker session alive: connect, subscribe, wait for
// the connection to drop, wait out the policy and start over. It retries
// until its context ends.
type Supervisor struct {
	session       Session
	policy        backoff.BackOff
	subscriptions []Subscription
	maxWait       time.Duration

	connected atomic.Bool
	state     atomic.Value
	stop      chan struct{}
	stopOnce  sync.Once
}

func (s *Supervisor) IsConnected() bool {
	return s.connected.Load()
}

func (s *Supervisor) State() State {
	return s.state.Load().(State)
}

func (s *Supervisor) Run(ctx context.Context, done func()) {
	slog.Debug("mqtt supervisor started", slog.Int("subscriptions", len(s.subscriptions)))
	defer done()
	defer s.markDown()

	for {
		lost, err := s.connect()
		if err == nil {
			_connectionAttempts.WithLabelValues("connected").Inc()
			s.policy.Reset()

			select {
			case <-ctx.Done():
				s.session.Disconnect()
				slog.Warn("mqtt supervisor cancelled")
				return
			case <-s.stop:
				s.session.Disconnect()
				return
			case err = <-lost:
				err = fmt.Errorf("connection lost: %w", err)
			}
		} else {
			_connectionAttempts.WithLabelValues("failed").Inc()
		}

		s.markDown()
		wait := s.nextWait()
		slog.Warn("mqtt broker unavailable, retrying",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", wait))

		select {
		case <-ctx.Done():
			slog.Warn("mqtt supervisor cancelled")
			return
		case <-s.stop:
			return
		case <-time.After(wait):
		}
	}
}

func (s *Supervisor) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Supervisor) connect() (<-chan error, error) {
	s.state.Store(StateConnecting)

	lost, err := s.session.Connect()
	if err != nil {
		return nil, err
	}

	for _, subscription := range s.subscriptions {
		err := s.session.Subscribe(subscription.Topic, subscription.QoS, subscription.Handler)
		if err != nil {
			s.session.Disconnect()
			return nil, err
		}
	}

	s.connected.Store(true)
	s.state.Store(StateConnected)
	_connected.Set(1)
	slog.Info("mqtt session established", slog.Int("subscriptions", len(s.subscriptions)))

	return lost, nil
}

func (s *Supervisor) markDown() {
	s.connected.Store(false)
	s.state.Store(StateDisconnected)
	_connected.Set(0)
}

func (s *Supervisor) nextWait() time.Duration {
	wait := s.policy.NextBackOff()
	if wait == backoff.Stop {
		return s.maxWait
	}

	return wait
}
