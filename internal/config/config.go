package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Dungeon DungeonConfig
	Redis   RedisConfig
}

// DungeonConfig holds console and kill-log configuration
type DungeonConfig struct {
	KillLogPath string
	Prompt      string
}

// RedisConfig holds Redis-specific configuration. Redis is optional; an
// empty Addr disables the redis: save/load targets.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Dungeon: DungeonConfig{
			KillLogPath: getEnvOrDefault("KILL_LOG_PATH", "log.txt"),
			Prompt:      getEnvOrDefault("PROMPT", "Enter command: "),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
