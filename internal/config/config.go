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
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Queue Config
	WorkerConcurrency int           `env:"WORKER_CONCURRENCY" envDefault:"5"`
	JobMaxRetries     int           `env:"JOB_MAX_RETRIES" envDefault:"3"`
	JobRetryBaseDelay time.Duration `env:"JOB_RETRY_BASE_DELAY" envDefault:"5s"`

	// Escalation windows: через сколько TRIGGERED-алерт эскалируется,
	// если никто его не подтвердил
	EscalationWindow     time.Duration `env:"ESCALATION_WINDOW" envDefault:"120s"`
	FireEscalationWindow time.Duration `env:"FIRE_ESCALATION_WINDOW" envDefault:"15s"`

	// Geofence Config
	GeofenceRadiusMeters float64 `env:"GEOFENCE_RADIUS_METERS" envDefault:"200"`
	// GeofenceRenotifyCooldown - окно подавления повторных уведомлений о
	// прибытии автобуса на одну и ту же остановку. Ноль сохраняет исходное
	// поведение: каждое GPS-обновление внутри радиуса шлет уведомление заново.
	GeofenceRenotifyCooldown time.Duration `env:"GEOFENCE_RENOTIFY_COOLDOWN" envDefault:"0s"`

	// Poller Config
	WeatherPollInterval     time.Duration `env:"WEATHER_POLL_INTERVAL" envDefault:"5m"`
	SocialPollInterval      time.Duration `env:"SOCIAL_POLL_INTERVAL" envDefault:"1m"`
	SocialWatermarkFallback time.Duration `env:"SOCIAL_WATERMARK_FALLBACK" envDefault:"5m"`

	// Adapter Config
	DispatchURL     string        `env:"DISPATCH_ADAPTER_URL"`
	LockdownURL     string        `env:"LOCKDOWN_ADAPTER_URL"`
	NotificationURL string        `env:"NOTIFICATION_ADAPTER_URL"`
	WeatherURL      string        `env:"WEATHER_ADAPTER_URL"`
	SocialURL       string        `env:"SOCIAL_ADAPTER_URL"`
	AdapterSecret   string        `env:"ADAPTER_SECRET"`
	AdapterTimeout  time.Duration `env:"ADAPTER_TIMEOUT" envDefault:"10s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		WorkerConcurrency:        getEnvAsInt("WORKER_CONCURRENCY", 5),
		JobMaxRetries:            getEnvAsInt("JOB_MAX_RETRIES", 3),
		JobRetryBaseDelay:        getEnvAsDuration("JOB_RETRY_BASE_DELAY", 5*time.Second),
		EscalationWindow:         getEnvAsDuration("ESCALATION_WINDOW", 120*time.Second),
		FireEscalationWindow:     getEnvAsDuration("FIRE_ESCALATION_WINDOW", 15*time.Second),
		GeofenceRadiusMeters:     getEnvAsFloat("GEOFENCE_RADIUS_METERS", 200),
		GeofenceRenotifyCooldown: getEnvAsDuration("GEOFENCE_RENOTIFY_COOLDOWN", 0),
		WeatherPollInterval:      getEnvAsDuration("WEATHER_POLL_INTERVAL", 5*time.Minute),
		SocialPollInterval:       getEnvAsDuration("SOCIAL_POLL_INTERVAL", time.Minute),
		SocialWatermarkFallback:  getEnvAsDuration("SOCIAL_WATERMARK_FALLBACK", 5*time.Minute),
		DispatchURL:              os.Getenv("DISPATCH_ADAPTER_URL"),
		LockdownURL:              os.Getenv("LOCKDOWN_ADAPTER_URL"),
		NotificationURL:          os.Getenv("NOTIFICATION_ADAPTER_URL"),
		WeatherURL:               os.Getenv("WEATHER_ADAPTER_URL"),
		SocialURL:                os.Getenv("SOCIAL_ADAPTER_URL"),
		AdapterSecret:            os.Getenv("ADAPTER_SECRET"),
		AdapterTimeout:           getEnvAsDuration("ADAPTER_TIMEOUT", 10*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
