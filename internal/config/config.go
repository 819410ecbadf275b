package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingRequired = errors.New("missing required configuration")

const (
	defaultEnvFile        = "backend.env"
	defaultPort           = 3000
	defaultMigrationsPath = "internal/db/migrations"
	defaultKafkaTopic     = "device-locations"
	defaultPublishTimeout = 5 * time.Second
	defaultLogLevel       = "info"
)

type Config struct {
	DatabaseURL      string
	DatabasePassword string
	Port             int
	MigrationsPath   string
	KafkaBrokers     []string
	KafkaTopic       string
	PublishTimeout   time.Duration
	TwilioAuthToken  string
	WebhookURL       string
	LogLevel         string
}

// Load reads configuration from the environment and, when present, from the
// dotenv file named by ENV_FILE (backend.env by default). Environment
// variables take precedence over the file.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("KAFKA_TOPIC", defaultKafkaTopic)
	v.SetDefault("PUBLISH_TIMEOUT", defaultPublishTimeout)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.AutomaticEnv()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := Config{
		DatabaseURL:      strings.TrimSpace(v.GetString("DATABASE_URL")),
		DatabasePassword: v.GetString("DATABASE_PASSWORD"),
		Port:             v.GetInt("PORT"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:       v.GetString("KAFKA_TOPIC"),
		PublishTimeout:   v.GetDuration("PUBLISH_TIMEOUT"),
		TwilioAuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
		WebhookURL:       v.GetString("WEBHOOK_URL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.DatabasePassword == "" {
		missing = append(missing, "DATABASE_PASSWORD")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}
	if cfg.PublishTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid PUBLISH_TIMEOUT %q", v.GetString("PUBLISH_TIMEOUT"))
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
