package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Driver store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Porter Saathi specifics
	Assistant AssistantConfig
	Store     StoreConfig
	Emergency EmergencyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type AssistantConfig struct {
	DefaultLanguage string
	Timezone        string
	KnowledgeFile   string // optional YAML overlay for guides, phrases and commands
	SeedSampleData  bool
}

type StoreConfig struct {
	Driver   string // memory | postgres
	Postgres PostgresConfig
}

type PostgresConfig struct {
	DSN string
}

type EmergencyConfig struct {
	Timeout   time.Duration
	RabbitMQ  RabbitMQConfig
	FCM       FCMConfig
	WebSocket WebSocketConfig
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type FCMConfig struct {
	CredentialsPath string
	ProjectID       string
	Topic           string
}

type WebSocketConfig struct {
	Broadcast bool
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(viper.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Assistant
	cfg.Assistant.DefaultLanguage = viper.GetString("assistant.default_language")
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.KnowledgeFile = viper.GetString("assistant.knowledge_file")
	cfg.Assistant.SeedSampleData = viper.GetBool("assistant.seed_sample_data")

	// Store
	cfg.Store.Driver = viper.GetString("store.driver")
	cfg.Store.Postgres.DSN = viper.GetString("store.postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Store.Postgres.DSN = dsn
	}

	// Emergency sinks
	cfg.Emergency.Timeout = viper.GetDuration("emergency.timeout")
	cfg.Emergency.RabbitMQ.URL = viper.GetString("emergency.rabbitmq.url")
	cfg.Emergency.RabbitMQ.Exchange = viper.GetString("emergency.rabbitmq.exchange")
	if amqpURL := viper.GetString("rabbitmq_url"); amqpURL != "" {
		cfg.Emergency.RabbitMQ.URL = amqpURL
	}
	cfg.Emergency.FCM.CredentialsPath = viper.GetString("emergency.fcm.credentials_path")
	cfg.Emergency.FCM.ProjectID = viper.GetString("emergency.fcm.project_id")
	cfg.Emergency.FCM.Topic = viper.GetString("emergency.fcm.topic")
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Emergency.FCM.CredentialsPath == "" {
		cfg.Emergency.FCM.CredentialsPath = creds
	}
	cfg.Emergency.WebSocket.Broadcast = viper.GetBool("emergency.websocket.broadcast")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", EnvironmentDevelopment)
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", "http://localhost:3000")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("assistant.default_language", "hi")
	viper.SetDefault("assistant.timezone", "Asia/Kolkata")
	viper.SetDefault("assistant.seed_sample_data", true)

	viper.SetDefault("store.driver", StoreMemory)

	viper.SetDefault("emergency.timeout", "30s")
	viper.SetDefault("emergency.rabbitmq.exchange", "porter.emergency")
	viper.SetDefault("emergency.fcm.topic", "emergency")
	viper.SetDefault("emergency.websocket.broadcast", true)
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if cfg.Store.Postgres.DSN == "" {
			return fmt.Errorf("store.postgres.dsn is required when store.driver is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", cfg.Store.Driver, StoreMemory, StorePostgres)
	}

	if cfg.Emergency.FCM.CredentialsPath != "" && cfg.Emergency.FCM.ProjectID == "" {
		return fmt.Errorf("emergency.fcm.project_id is required when fcm credentials are set")
	}
	if cfg.Emergency.Timeout <= 0 {
		return fmt.Errorf("emergency.timeout must be positive")
	}
	return nil
}

// splitList splits a comma separated value, since env overrides arrive as one string.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
