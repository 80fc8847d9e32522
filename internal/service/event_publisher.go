package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go-medical-appointment/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// AppointmentEventPublisher hands committed appointment changes to external
// consumers (notifications, waitlist, refunds).
type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event *entity.AppointmentEvent) error
	Close() error
}

// =============================================================================
// Redis stream
// =============================================================================

type redisStreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
	log    *logrus.Logger
}

// NewRedisStreamPublisher appends events to a capped Redis stream with XADD.
// The client is owned by the caller and is not closed by Close.
func NewRedisStreamPublisher(client *redis.Client, stream string, maxLen int64, log *logrus.Logger) AppointmentEventPublisher {
	return &redisStreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		log:    log,
	}
}

func (p *redisStreamPublisher) Publish(ctx context.Context, event *entity.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"type":           string(event.Type),
			"appointment_id": event.AppointmentID.String(),
			"payload":        string(payload),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("xadd %s event to %s: %w", event.Type, p.stream, err)
	}

	p.log.Debugf("Published %s for appointment %s to stream %s (%s)", event.Type, event.AppointmentID, p.stream, id)
	return nil
}

func (p *redisStreamPublisher) Close() error {
	return nil
}

// =============================================================================
// Kafka
// =============================================================================

// KafkaMessageWriter is the subset of *kafka.Writer the publisher needs
type KafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer KafkaMessageWriter
	log    *logrus.Logger
}

// NewKafkaPublisher writes events keyed by appointment id
func NewKafkaPublisher(writer KafkaMessageWriter, log *logrus.Logger) AppointmentEventPublisher {
	return &kafkaPublisher{
		writer: writer,
		log:    log,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event *entity.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID.String())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}

	p.log.Debugf("Published %s for appointment %s to kafka", event.Type, event.AppointmentID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// =============================================================================
// Log only
// =============================================================================

type logPublisher struct {
	log *logrus.Logger
}

// NewLogPublisher only logs events. Used when no broker is configured.
func NewLogPublisher(log *logrus.Logger) AppointmentEventPublisher {
	return &logPublisher{log: log}
}

func (p *logPublisher) Publish(ctx context.Context, event *entity.AppointmentEvent) error {
	p.log.WithFields(logrus.Fields{
		"event":          event.Type,
		"appointment_id": event.AppointmentID,
		"doctor_id":      event.DoctorID,
		"patient_id":     event.PatientID,
		"date":           event.Date,
		"start_time":     event.StartTime,
	}).Info("Appointment event")
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
