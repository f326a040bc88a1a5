package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // BUSINESS_TIMEZONE must resolve on minimal images

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type SessionStore string

const (
	SessionStoreMemory   SessionStore = "memory"
	SessionStoreDynamoDB SessionStore = "dynamodb"
)

type Configuration struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Business BusinessConfig
	Session  SessionConfig
	AWS      AWSConfig
	Gemini   GeminiConfig
	Chat     ChatConfig
	Sentry   SentryConfig
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type LoggingConfig struct {
	Level string
}

type BusinessConfig struct {
	TimeZone string
	Location *time.Location
}

type SessionConfig struct {
	Store SessionStore
	TTL   time.Duration
	Table string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type GeminiConfig struct {
	APIKey    string
	TextModel string
	LiveModel string
	Timeout   time.Duration
}

type ChatConfig struct {
	RateLimitPerMinute int
}

type SentryConfig struct {
	DSN         string
	Environment string
}

func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	v.SetDefault("SESSION_STORE", string(SessionStoreMemory))
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("ESTIMATOR_SESSIONS_TABLE", "estimator_sessions")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_TEXT_MODEL", "gemini-3-flash-preview")
	v.SetDefault("GEMINI_LIVE_MODEL", "gemini-2.5-flash-native-audio-preview-09-2025")
	v.SetDefault("GEMINI_TIMEOUT", "30s")
	v.SetDefault("CHAT_RATE_LIMIT_PER_MINUTE", 20)
	v.SetDefault("SENTRY_DSN", "")
	v.SetDefault("SENTRY_ENVIRONMENT", "development")
}

// Load reads the configuration from the environment. A .env file is picked
// up by godotenv before this runs.
func Load() (*Configuration, error) {
	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := &Configuration{
		Server: ServerConfig{
			Port:           v.GetInt("PORT"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Business: BusinessConfig{
			TimeZone: v.GetString("BUSINESS_TIMEZONE"),
		},
		Session: SessionConfig{
			Store: SessionStore(strings.ToLower(v.GetString("SESSION_STORE"))),
			TTL:   v.GetDuration("SESSION_TTL"),
			Table: v.GetString("ESTIMATOR_SESSIONS_TABLE"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Gemini: GeminiConfig{
			APIKey:    v.GetString("GEMINI_API_KEY"),
			TextModel: v.GetString("GEMINI_TEXT_MODEL"),
			LiveModel: v.GetString("GEMINI_LIVE_MODEL"),
			Timeout:   v.GetDuration("GEMINI_TIMEOUT"),
		},
		Chat: ChatConfig{
			RateLimitPerMinute: v.GetInt("CHAT_RATE_LIMIT_PER_MINUTE"),
		},
		Sentry: SentryConfig{
			DSN:         v.GetString("SENTRY_DSN"),
			Environment: v.GetString("SENTRY_ENVIRONMENT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreDynamoDB:
	default:
		return fmt.Errorf("%w: SESSION_STORE must be memory or dynamodb, got %q", ErrInvalidConfig, c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalidConfig)
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("%w: GEMINI_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.Chat.RateLimitPerMinute < 0 {
		return fmt.Errorf("%w: CHAT_RATE_LIMIT_PER_MINUTE must not be negative", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(c.Business.TimeZone)
	if err != nil {
		return fmt.Errorf("%w: BUSINESS_TIMEZONE: %v", ErrInvalidConfig, err)
	}
	c.Business.Location = loc
	return nil
}

func splitList(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}
