package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
	Events  EventsConfig
	Kafka   KafkaConfig
}

type AppConfig struct {
	Port       string
	Env        string
	Timezone   string
	CORSOrigin string
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	LogLevel     string
	MaxIdleConns int
	MaxOpenConns int
	Timezone     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// BookingConfig holds the lead times enforced before an appointment starts
type BookingConfig struct {
	CancelWindow     time.Duration
	RescheduleWindow time.Duration
}

type EventsConfig struct {
	Driver       string // redis | kafka | log
	RedisStream  string
	StreamMaxLen int64
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")

	v.SetDefault("BOOKING_CANCEL_WINDOW", "2h")
	v.SetDefault("BOOKING_RESCHEDULE_WINDOW", "24h")

	v.SetDefault("EVENTS_DRIVER", "redis")
	v.SetDefault("EVENTS_REDIS_STREAM", "appointments:events")
	v.SetDefault("EVENTS_STREAM_MAXLEN", 10000)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "appointment-events")
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			Timezone:   v.GetString("APP_TIMEZONE"),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			LogLevel:     v.GetString("DB_LOG_LEVEL"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			Timezone:     v.GetString("APP_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: durationOr(v, "JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Booking: BookingConfig{
			CancelWindow:     durationOr(v, "BOOKING_CANCEL_WINDOW", 2*time.Hour),
			RescheduleWindow: durationOr(v, "BOOKING_RESCHEDULE_WINDOW", 24*time.Hour),
		},
		Events: EventsConfig{
			Driver:       strings.ToLower(v.GetString("EVENTS_DRIVER")),
			RedisStream:  v.GetString("EVENTS_REDIS_STREAM"),
			StreamMaxLen: v.GetInt64("EVENTS_STREAM_MAXLEN"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
	}
}

// Location resolves APP_TIMEZONE, falling back to the host zone.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
