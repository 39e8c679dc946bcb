package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	AdminToken  string
	PostgresDSN string

	// Seed loads development fixtures into the in-memory store on boot.
	// Ignored when a Postgres DSN is configured.
	Seed bool

	// EventBackend selects the regulatory event transport: "kafka", "nats",
	// "redis", or "memory" (default for local development).
	EventBackend string
	KafkaBrokers []string
	NATSURL      string
	RedisAddr    string
	EventTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:         getenv("REGLEDGER_ADDR", ":8080"),
		AdminToken:   os.Getenv("REGLEDGER_ADMIN_TOKEN"),
		PostgresDSN:  os.Getenv("REGLEDGER_POSTGRES_DSN"),
		Seed:         os.Getenv("REGLEDGER_SEED") == "true",
		EventBackend: getenv("REGLEDGER_EVENT_BACKEND", "memory"),
		NATSURL:      getenv("REGLEDGER_NATS_URL", "nats://127.0.0.1:4222"),
		RedisAddr:    getenv("REGLEDGER_REDIS_ADDR", "127.0.0.1:6379"),
		EventTopic:   getenv("REGLEDGER_EVENT_TOPIC", "regulatory-events"),
	}

	brokers := getenv("REGLEDGER_KAFKA_BROKERS", "127.0.0.1:9092")
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
