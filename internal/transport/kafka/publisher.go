package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"courier-dispatch/internal/domain"
)

// Dispatch event types.
const (
	EventCourierAssigned     = "courier_assigned"
	EventCourierForcedOnline = "courier_forced_online"
	EventOrderUnfulfillable  = "order_unfulfillable"
)

// DispatchEvent is the envelope published for every dispatch decision.
type DispatchEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	CourierID  int64     `json:"courier_id,omitempty"`
	DistanceKm float64   `json:"distance_km,omitempty"`
	RoundRobin bool      `json:"round_robin,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

var newSyncProducer = sarama.NewSyncProducer

// Publisher sends dispatch events to a topic, keyed by order id.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
	newID    func() string
}

// NewPublisher connects a sync producer. It returns nil when Kafka is not
// configured.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newPublisher(p, topic), nil
}

func newPublisher(p sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: p,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// CourierAssigned publishes an assignment.
func (p *Publisher) CourierAssigned(ctx context.Context, res domain.AssignResult) error {
	return p.send(ctx, DispatchEvent{
		Type:       EventCourierAssigned,
		OrderID:    res.OrderID,
		CourierID:  res.Courier.ID,
		DistanceKm: res.DistanceKm,
		RoundRobin: res.RoundRobin,
	})
}

// CourierForcedOnline publishes the audit record of a courier switched
// online by dispatch.
func (p *Publisher) CourierForcedOnline(ctx context.Context, orderID, courierID int64) error {
	return p.send(ctx, DispatchEvent{
		Type:      EventCourierForcedOnline,
		OrderID:   orderID,
		CourierID: courierID,
	})
}

// OrderUnfulfillable publishes a cancellation for lack of couriers.
func (p *Publisher) OrderUnfulfillable(ctx context.Context, orderID int64, reason string) error {
	return p.send(ctx, DispatchEvent{
		Type:    EventOrderUnfulfillable,
		OrderID: orderID,
		Reason:  reason,
	})
}

func (p *Publisher) send(ctx context.Context, ev DispatchEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev.EventID = p.newID()
	ev.OccurredAt = p.now()

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.OrderID, 10)),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", ev.Type, err)
	}
	return nil
}

// Close closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

// NopPublisher drops every event. It is used when Kafka is disabled.
type NopPublisher struct{}

// CourierAssigned implements the dispatch event sink.
func (NopPublisher) CourierAssigned(context.Context, domain.AssignResult) error { return nil }

// CourierForcedOnline implements the dispatch event sink.
func (NopPublisher) CourierForcedOnline(context.Context, int64, int64) error { return nil }

// OrderUnfulfillable implements the dispatch event sink.
func (NopPublisher) OrderUnfulfillable(context.Context, int64, string) error { return nil }
