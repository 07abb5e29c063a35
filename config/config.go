package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	AppEnv                string
	AppPort               string
	AllowedOrigins        string
	DBDriver              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBPath                string
	DBMaxIdleConns        int
	DBMaxOpenConns        int
	NATSURL               string
	EventDispatchInterval int
	JWTSecret             string
	JWTExpirationHours    int
	TagNamesCaseSensitive bool
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	zap.L().Debug("environment variable not set, using default", zap.String("key", key), zap.String("default", defaultValue))
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		zap.L().Warn("invalid integer value, using default", zap.String("key", key), zap.Int("default", defaultValue))
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		zap.L().Warn("invalid boolean value, using default", zap.String("key", key), zap.Bool("default", defaultValue))
	}
	return defaultValue
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() Config {
	return Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		AppPort:               getEnv("APP_PORT", "8080"),
		AllowedOrigins:        getEnv("ALLOWED_ORIGINS", "*"),
		DBDriver:              getEnv("DB_DRIVER", "postgres"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "notelist"),
		DBPassword:            getEnv("DB_PASSWORD", "notelist"),
		DBName:                getEnv("DB_NAME", "notelist"),
		DBPath:                getEnv("DB_PATH", "notelist.db"),
		DBMaxIdleConns:        getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:        getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		NATSURL:               getEnv("NATS_URL", "nats://localhost:4222"),
		EventDispatchInterval: getEnvAsInt("EVENT_DISPATCH_INTERVAL_SECONDS", 1),
		JWTSecret:             getEnv("JWT_SECRET", "your-super-secret-key-change-this-in-production"),
		JWTExpirationHours:    getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		TagNamesCaseSensitive: getEnvAsBool("TAG_CASE_SENSITIVE", true),
	}
}
