package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Booking.CancelWindow != 2*time.Hour {
		t.Errorf("CancelWindow = %v, want 2h", cfg.Booking.CancelWindow)
	}
	if cfg.Booking.RescheduleWindow != 24*time.Hour {
		t.Errorf("RescheduleWindow = %v, want 24h", cfg.Booking.RescheduleWindow)
	}
	if cfg.Events.Driver != "redis" {
		t.Errorf("Events.Driver = %q, want redis", cfg.Events.Driver)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:9092" {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("AccessExpiry = %v, want 15m", cfg.JWT.AccessExpiry)
	}
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BOOKING_CANCEL_WINDOW", "90m")
	v.Set("BOOKING_RESCHEDULE_WINDOW", "not-a-duration")
	v.Set("EVENTS_DRIVER", "KAFKA")
	v.Set("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg := fromViper(v)

	if cfg.Booking.CancelWindow != 90*time.Minute {
		t.Errorf("CancelWindow = %v, want 90m", cfg.Booking.CancelWindow)
	}
	if cfg.Booking.RescheduleWindow != 24*time.Hour {
		t.Errorf("invalid duration should fall back, got %v", cfg.Booking.RescheduleWindow)
	}
	if cfg.Events.Driver != "kafka" {
		t.Errorf("Events.Driver = %q, want kafka", cfg.Events.Driver)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
}

func TestAppConfig_Location(t *testing.T) {
	if loc := (AppConfig{Timezone: "UTC"}).Location(); loc.String() != "UTC" {
		t.Errorf("Location = %v, want UTC", loc)
	}
	if loc := (AppConfig{Timezone: "Nowhere/Invalid"}).Location(); loc != time.Local {
		t.Errorf("invalid zone should fall back to Local, got %v", loc)
	}
}
