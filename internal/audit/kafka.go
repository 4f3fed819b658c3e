package audit

import (
	"context"
	"encoding/json"

	"sealed-auction/utils"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRecorder publishes audit events as JSON messages keyed by entity ID
type KafkaRecorder struct {
	writer messageWriter
	now    utils.Clock
}

// NewKafkaRecorder creates an async Kafka publisher for topic
func NewKafkaRecorder(brokers []string, topic string) *KafkaRecorder {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				utils.Warn("audit: kafka delivery failed", map[string]any{
					"topic":    topic,
					"messages": len(messages),
					"error":    err.Error(),
				})
			}
		},
	}
	return &KafkaRecorder{writer: writer, now: utils.UTCNow}
}

// Record publishes the event
func (r *KafkaRecorder) Record(ctx context.Context, entity, entityID, action string, details map[string]any) {
	event := newEvent(r.now, entity, entityID, action, details)

	payload, err := json.Marshal(event)
	if err != nil {
		utils.Warn("audit: failed to encode event", map[string]any{"entity_id": entityID, "error": err.Error()})
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "entity", Value: []byte(entity)},
			{Key: "action", Value: []byte(action)},
		},
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		utils.Warn("audit: failed to publish event", map[string]any{
			"entity":    entity,
			"entity_id": entityID,
			"action":    action,
			"error":     err.Error(),
		})
	}
}

// Close flushes pending messages and releases the writer
func (r *KafkaRecorder) Close() error {
	return r.writer.Close()
}
