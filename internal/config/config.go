package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// Mail transport and addressing configuration
type MailConfig struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
	// NotifyTo receives contact/signup/download notifications
	NotifyTo string
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Mail   MailConfig
}

// Default configuration values
const (
	DefaultServerPort = "9000"
	DefaultServerHost = ""
	DefaultMongoURI   = "mongodb://localhost:27017"
	DefaultMongoDB    = "marketing"
	DefaultSMTPHost   = "smtp.gmail.com"
	DefaultSMTPPort   = 587
	DefaultTokenTTL   = time.Hour
)

// New returns a new Config populated from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			Secret:   getEnv("SECRET_KEY", ""),
			TokenTTL: getEnvDuration("TOKEN_TTL", DefaultTokenTTL),
		},
		Mail: MailConfig{
			SMTPHost: getEnv("SMTP_HOST", DefaultSMTPHost),
			SMTPPort: getEnvInt("SMTP_PORT", DefaultSMTPPort),
			Username: getEnv("MAIL_USER", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", getEnv("MAIL_USER", "")),
			NotifyTo: getEnv("MAIL_TO", ""),
		},
	}
}

// Validate checks that configuration required at runtime is present
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	return nil
}

// Address returns the listen address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
