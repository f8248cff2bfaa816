package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

// KafkaWriter is the subset of kafka.Writer the notifier needs, so tests can replace it
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaContactNotifier publishes stored contact messages to a topic
type KafkaContactNotifier struct {
	writer KafkaWriter
}

// ContactEvent is the JSON payload written to the topic
type ContactEvent struct {
	Type    string               `json:"type"`
	SentAt  time.Time            `json:"sent_at"`
	Message model.ContactMessage `json:"message"`
}

const contactCreatedEvent = "contact.created"

// NewKafkaContactNotifier creates a writer for the given broker and topic
func NewKafkaContactNotifier(broker, topic string) *KafkaContactNotifier {
	return NewKafkaContactNotifierWithWriter(newContactWriter(broker, topic))
}

// newContactWriter flushes every message at once and never retries, since
// publishing happens inside the contact request
func newContactWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            1,
		WriteTimeout:           5 * time.Second,
	}
}

func NewKafkaContactNotifierWithWriter(writer KafkaWriter) *KafkaContactNotifier {
	return &KafkaContactNotifier{writer: writer}
}

func (n *KafkaContactNotifier) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	payload, err := json.Marshal(ContactEvent{
		Type:    contactCreatedEvent,
		SentAt:  time.Now().UTC(),
		Message: *msg,
	})
	if err != nil {
		return fmt.Errorf("failed to encode contact event: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.ID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(contactCreatedEvent)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish contact event: %w", err)
	}
	return nil
}

// Close flushes and closes the writer
func (n *KafkaContactNotifier) Close() error {
	return n.writer.Close()
}

// NopContactNotifier is used when no broker is configured
type NopContactNotifier struct{}

func NewNopContactNotifier() repository.ContactNotifierRepository {
	return NopContactNotifier{}
}

func (NopContactNotifier) NotifyContact(context.Context, *model.ContactMessage) error {
	return nil
}
