package service

import (
	"context"
	"errors"
	"time"

	"github.com/mstrelkov/jewelstock/internal/logging"
)

var ErrInvalidInput = errors.New("invalid input")

// Publisher is the slice of the kafka producer the services need.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

// publish sends an audit event with a short timeout. Event delivery is
// best-effort: a broker outage must never fail the request that caused
// the event.
func publish(ctx context.Context, p Publisher, topic, key string, event map[string]interface{}) {
	if p == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "topic", topic, "error", err)
	}
}
