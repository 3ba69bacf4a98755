package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/protocol"
)

// MessageSource is the consumer side of the alerts topic
type MessageSource interface {
	Consume(ctx context.Context) (kafka.Message, error)
	Commit(ctx context.Context, msg kafka.Message) error
}

// Sender delivers one decoded notification
type Sender interface {
	SendAlertNotification(ctx context.Context, n *protocol.AlertNotification) error
}

// DeadLetter receives messages whose delivery kept failing
type DeadLetter interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// RetryPolicy defines the exponential backoff for delivery retries
type RetryPolicy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// EmailRetryPolicy is used by the notification service
var EmailRetryPolicy = RetryPolicy{
	MaxAttempts:   5,
	BaseDelay:     1 * time.Second,
	MaxDelay:      30 * time.Second,
	BackoffFactor: 2.0,
}

// ErrDeliveryStalled is returned by Run when a message could neither be
// delivered nor dead-lettered. Its offset is left uncommitted.
var ErrDeliveryStalled = errors.New("notification delivery stalled")

// NextRetry computes delay = min(BaseDelay * BackoffFactor^attempt, MaxDelay)
func NextRetry(policy RetryPolicy, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := float64(policy.BaseDelay)
	for i := 0; i < attempt; i++ {
		delay *= policy.BackoffFactor
	}

	d := time.Duration(delay)
	if d > policy.MaxDelay || d < 0 {
		d = policy.MaxDelay
	}
	return d
}

// Worker moves notifications from the alerts topic to the sender. A message
// is committed only once it was delivered or handed to the dead letter topic.
type Worker struct {
	source     MessageSource
	sender     Sender
	deadLetter DeadLetter
	policy     RetryPolicy
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewWorker creates a worker. deadLetter may be nil.
func NewWorker(source MessageSource, sender Sender, deadLetter DeadLetter, policy RetryPolicy, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Worker{
		source:     source,
		sender:     sender,
		deadLetter: deadLetter,
		policy:     policy,
		logger:     logger,
		sleep:      sleepContext,
	}
}

// Run consumes until ctx is cancelled. It returns ErrDeliveryStalled when a
// message can be neither delivered nor dead-lettered, so the group resumes
// from that message after a restart.
func (w *Worker) Run(ctx context.Context) error {
	for {
		msg, err := w.source.Consume(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.Error("failed to consume message", zap.Error(err))
			continue
		}

		if err := w.Handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// Handle processes a single message and commits it when done with it
func (w *Worker) Handle(ctx context.Context, msg kafka.Message) error {
	n, err := protocol.DecodeAlertNotification(msg.Value)
	if err != nil {
		w.logger.Warn("dropping undecodable notification",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return w.commit(ctx, msg)
	}

	sendErr := w.deliver(ctx, n)
	if sendErr == nil {
		return w.commit(ctx, msg)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if w.deadLetter == nil {
		return fmt.Errorf("%w: %s: %v", ErrDeliveryStalled, n.ID, sendErr)
	}
	if err := w.deadLetter.Publish(ctx, string(msg.Key), msg.Value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDeliveryStalled, n.ID, errors.Join(sendErr, err))
	}

	w.logger.Warn("notification moved to dead letter topic",
		zap.String("id", n.ID),
		zap.String("type", string(n.Alert.Type)),
		zap.Error(sendErr),
	)
	return w.commit(ctx, msg)
}

func (w *Worker) deliver(ctx context.Context, n *protocol.AlertNotification) error {
	var err error
	for attempt := 0; attempt < w.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := w.sleep(ctx, NextRetry(w.policy, attempt-1)); err != nil {
				return err
			}
		}

		if err = w.sender.SendAlertNotification(ctx, n); err == nil {
			return nil
		}
		w.logger.Warn("failed to send notification",
			zap.String("id", n.ID),
			zap.String("type", string(n.Alert.Type)),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}
	return err
}

func (w *Worker) commit(ctx context.Context, msg kafka.Message) error {
	if err := w.source.Commit(ctx, msg); err != nil {
		// The message was handled; a missed commit only means a redelivery
		w.logger.Error("failed to commit offset", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
