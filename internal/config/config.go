package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	AppEnv string
	Port   string
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type LoggerConfig struct {
	Level string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "development"),
			Port:   getEnv("APP_PORT", "8080"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "supplement_store"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "change-this-in-prod"),
			Expiration: getEnvDuration("JWT_EXPIRATION", 7*24*time.Hour),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOGGER_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if h, err := strconv.Atoi(value); err == nil {
			return time.Duration(h) * time.Hour
		}
	}
	return fallback
}
