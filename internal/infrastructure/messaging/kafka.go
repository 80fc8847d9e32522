package messaging

import (
	"fmt"
	"time"

	"go-medical-appointment/config"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// NewKafkaWriter creates a writer for the appointment event topic.
// Messages are keyed by appointment id so one appointment's events stay ordered.
func NewKafkaWriter(cfg config.KafkaConfig, log *logrus.Logger) (*kafka.Writer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(msg string, args ...interface{}) {}),
		ErrorLogger:            kafka.LoggerFunc(log.Errorf),
	}

	log.Infof("Kafka writer ready: brokers=%v topic=%s", cfg.Brokers, cfg.Topic)
	return writer, nil
}
