package configs

import (
	"errors"
	"os"
)

const (
	DefaultLimitFeed = int64(20)
	MaxLimitFeed     = int64(100)

	DefaultTrendingK = 10
	MaxTrendingK     = 50
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	AppEnv    string
}

// Load reads configuration from the environment. godotenv is expected to have
// already overlaid the .env file in main.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		AppEnv:    os.Getenv("APP_ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "production"
	}
	if cfg.MongoURI == "" || cfg.DBName == "" {
		return nil, errors.New("MONGO_URI and DB_NAME are required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func (c *Config) Development() bool {
	return c.AppEnv == "development"
}
