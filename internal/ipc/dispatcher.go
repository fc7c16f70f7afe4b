// Package ipc routes named-channel calls from a UI shell to the calculator.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrUnknownChannel = errors.New("unknown channel")

// Event is one invocation on a channel. Payload is the raw JSON argument.
type Event struct {
	Channel string
	Payload json.RawMessage
}

// HandlerFunc processes an event and returns a result.
type HandlerFunc func(context.Context, Event) (any, error)

// Option configures handler registration.
type Option func(*registration)

type registration struct {
	nanOnError bool
	replyOn    string
}

// NaNOnError turns any failure into a NaN result. The error is logged and counted
// but never reaches the caller.
func NaNOnError() Option {
	return func(r *registration) {
		r.nanOnError = true
	}
}

// RepliesOn marks a fire-and-forget channel whose result is delivered on another channel.
func RepliesOn(channel string) Option {
	return func(r *registration) {
		r.replyOn = channel
	}
}

// Dispatcher routes events to registered handlers.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	replies  map[string]string
	logger   *slog.Logger

	calls    metric.Int64Counter
	failures metric.Int64Counter
}

// New uses the global OTel meter, which is a no-op unless the host installs an SDK.
func New(logger *slog.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		replies:  make(map[string]string),
		logger:   logger,
	}

	m := meter()
	var err error

	d.calls, err = m.Int64Counter(
		"ipc.calls",
		metric.WithDescription("Total channel invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating calls counter: %w", err)
	}

	d.failures, err = m.Int64Counter(
		"ipc.failures",
		metric.WithDescription("Total channel invocations that failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failures counter: %w", err)
	}

	return d, nil
}

// Register adds a handler for the channel, replacing any previous one.
func (d *Dispatcher) Register(channel string, h HandlerFunc, opts ...Option) {
	var reg registration
	for _, opt := range opts {
		opt(&reg)
	}

	attrs := metric.WithAttributes(attribute.String("channel", channel))
	handler := func(ctx context.Context, e Event) (any, error) {
		d.calls.Add(ctx, 1, attrs)
		res, err := h(ctx, e)
		if err == nil {
			return res, nil
		}
		d.failures.Add(ctx, 1, attrs)
		if reg.nanOnError {
			d.logger.Error("channel call failed", "channel", channel, "error", err)
			return math.NaN(), nil
		}
		d.logger.Debug("channel call rejected", "channel", channel, "error", err)
		return nil, err
	}

	d.handlers[channel] = handler
	if reg.replyOn != "" {
		d.replies[channel] = reg.replyOn
	} else {
		delete(d.replies, channel)
	}
}

// ReplyChannel returns the channel a result is delivered on, or "" when the caller
// gets it back directly.
func (d *Dispatcher) ReplyChannel(channel string) string {
	return d.replies[channel]
}

// Dispatch routes an event to its registered handler.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) (any, error) {
	h, ok := d.handlers[e.Channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, e.Channel)
	}
	return h(ctx, e)
}

// HasHandler returns true if a handler is registered for the channel.
func (d *Dispatcher) HasHandler(channel string) bool {
	_, ok := d.handlers[channel]
	return ok
}
