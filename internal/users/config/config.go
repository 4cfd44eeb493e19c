package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"userdir/internal/users/notifier"

	"github.com/caarlos0/env/v7"
)

type Config struct {
	MongoURI        string
	Port            string
	DBName          string
	UsersCollection string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration

	Mail     notifier.MailConfig
	Notifier notifier.Config
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:        mongoURI,
		Port:            port,
		DBName:          getEnv("DB_NAME", "userdir_db"),
		UsersCollection: getEnv("COLLECTION_USERS", "users"),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
	}

	if err := env.Parse(&cfg.Mail); err != nil {
		return nil, fmt.Errorf("mail config: %w", err)
	}
	if err := env.Parse(&cfg.Notifier); err != nil {
		return nil, fmt.Errorf("notifier config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Mail.FromAddress == "" {
		return fmt.Errorf("SMTP_FROM_ADDRESS is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
