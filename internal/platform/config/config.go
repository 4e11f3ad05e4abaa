package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with DATA_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	DataBackend    string
	DatabaseURL    string
	SQLitePath     string
	MigrationsPath string

	// Timezone is the IANA zone "today" is evaluated in when deciding whether
	// a ledger entry is future-dated.
	Timezone string

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "300-M"
	RedisURL           string // Optional; shares rate limit counters across replicas

	AMQPURL      string // Optional; enables transaction.created events
	AMQPExchange string
	AMQPQueue    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_BACKEND", BackendPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "expense_tracker.db")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("TIMEZONE", "Asia/Phnom_Penh")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "expense_tracker")
	viper.SetDefault("AMQP_QUEUE", "transactions")

	// Environment variables override .env values, which override defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		DataBackend:    strings.ToLower(strings.TrimSpace(viper.GetString("DATA_BACKEND"))),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		Timezone:       viper.GetString("TIMEZONE"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		RedisURL:       viper.GetString("REDIS_URL"),
		AMQPURL:        viper.GetString("AMQP_URL"),
		AMQPExchange:   viper.GetString("AMQP_EXCHANGE"),
		AMQPQueue:      viper.GetString("AMQP_QUEUE"),
	}
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.DataBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when DATA_BACKEND is %s", BackendPostgres)
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required when DATA_BACKEND is %s", BackendSQLite)
		}
	case BackendMemory:
		log.Println("Warning: DATA_BACKEND is memory. Data is lost on restart.")
	default:
		return nil, fmt.Errorf("unknown DATA_BACKEND %q (want %s, %s or %s)", cfg.DataBackend, BackendPostgres, BackendSQLite, BackendMemory)
	}

	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. transaction.created events will not be published.")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
