package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Session Config
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"336h"`
	SessionCookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// HTTP Config
	CORSAllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	LoginRateLimitRPS   int      `env:"LOGIN_RATE_LIMIT_RPS" envDefault:"1"`
	LoginRateLimitBurst int      `env:"LOGIN_RATE_LIMIT_BURST" envDefault:"5"`
	// Пустой список: X-Forwarded-For игнорируется, IP клиента берется из соединения
	TrustedProxies      []string `env:"TRUSTED_PROXIES"`

	// Alert evaluator Config
	EvaluatorEnabled          bool          `env:"EVALUATOR_ENABLED" envDefault:"true"`
	EvaluatorTick             time.Duration `env:"EVALUATOR_TICK" envDefault:"1m"`
	EvaluatorRealtimeInterval time.Duration `env:"EVALUATOR_REALTIME_INTERVAL" envDefault:"1m"`
	EvaluatorLockTTL          time.Duration `env:"EVALUATOR_LOCK_TTL" envDefault:"2m"`

	// Matching & caching
	MatchPageSize int           `env:"MATCH_PAGE_SIZE" envDefault:"10"`
	CrimeCacheTTL time.Duration `env:"CRIME_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		DBMaxConns:                int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		MigrationsPath:            getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		LogFormat:                 getEnv("LOG_FORMAT", "json"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		RedisDB:                   getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                os.Getenv("WEBHOOK_URL"),
		WebhookSecret:             os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:            getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:         getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:          getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SessionTTL:                getEnvAsDuration("SESSION_TTL", 14*24*time.Hour),
		SessionCookieSecure:       getEnvAsBool("SESSION_COOKIE_SECURE", false),
		CORSAllowedOrigins:        getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		LoginRateLimitRPS:         getEnvAsInt("LOGIN_RATE_LIMIT_RPS", 1),
		LoginRateLimitBurst:       getEnvAsInt("LOGIN_RATE_LIMIT_BURST", 5),
		TrustedProxies:            getEnvAsList("TRUSTED_PROXIES", nil),
		EvaluatorEnabled:          getEnvAsBool("EVALUATOR_ENABLED", true),
		EvaluatorTick:             getEnvAsDuration("EVALUATOR_TICK", time.Minute),
		EvaluatorRealtimeInterval: getEnvAsDuration("EVALUATOR_REALTIME_INTERVAL", time.Minute),
		EvaluatorLockTTL:          getEnvAsDuration("EVALUATOR_LOCK_TTL", 2*time.Minute),
		MatchPageSize:             getEnvAsInt("MATCH_PAGE_SIZE", 10),
		CrimeCacheTTL:             getEnvAsDuration("CRIME_CACHE_TTL", 5*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.MatchPageSize < 1 {
		return nil, fmt.Errorf("MATCH_PAGE_SIZE must be positive, got %d", cfg.MatchPageSize)
	}
	if cfg.EvaluatorTick <= 0 || cfg.EvaluatorRealtimeInterval <= 0 {
		return nil, fmt.Errorf("EVALUATOR_TICK and EVALUATOR_REALTIME_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
