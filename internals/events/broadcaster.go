package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"raillink_backend/internals/observability"
)

// Schedule event types published to interested listeners.
const (
	ScheduleCreated = "schedule.created"
	ScheduleUpdated = "schedule.updated"
	ScheduleDeleted = "schedule.deleted"
)

type ScheduleEvent struct {
	Type       string      `json:"type"`
	ScheduleID uuid.UUID   `json:"schedule_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

// Broadcaster publishes schedule events best-effort: no delivery
// guarantee, no backpressure, failures only logged and counted.
type Broadcaster struct {
	writer *kafka.Writer
}

// NewBroadcaster returns a disabled broadcaster (nil writer) when no
// brokers are configured; Publish then becomes a no-op.
func NewBroadcaster(brokers []string, topic string) *Broadcaster {
	if len(brokers) == 0 {
		return &Broadcaster{}
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		WriteTimeout:           10 * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}
	return &Broadcaster{writer: w}
}

// Publish fires the event from a goroutine so the request never waits on
// the broker.
func (b *Broadcaster) Publish(eventType string, scheduleID uuid.UUID, payload interface{}) {
	if b == nil || b.writer == nil {
		return
	}
	ev := ScheduleEvent{
		Type:       eventType,
		ScheduleID: scheduleID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	go func() {
		value, err := json.Marshal(ev)
		if err != nil {
			log.Printf("[ERROR] marshal schedule event: %v", err)
			observability.BroadcastFailures.Inc()
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := b.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(scheduleID.String()),
			Value: value,
		}); err != nil {
			log.Printf("[ERROR] publish %s: %v", eventType, err)
			observability.BroadcastFailures.Inc()
		}
	}()
}

func (b *Broadcaster) Close() error {
	if b == nil || b.writer == nil {
		return nil
	}
	return b.writer.Close()
}
