package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment and an optional config.yaml.
// A missing JWT secret is a startup failure, not something to discover on
// the first login request.
func Load() (*Config, error) {
	viper.SetDefault("SERVER_ADDR", ":8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "quill")
	viper.SetDefault("DB_PASSWORD", "quill_dev_password")
	viper.SetDefault("DB_NAME", "quill")

	viper.SetDefault("TOKEN_TTL", "0")

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	_ = viper.ReadInConfig() // ignore error if no file

	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	cfg := &Config{
		ServerAddr: viper.GetString("SERVER_ADDR"),
		DBHost:     viper.GetString("DB_HOST"),
		DBPort:     viper.GetString("DB_PORT"),
		DBUser:     viper.GetString("DB_USER"),
		DBPassword: viper.GetString("DB_PASSWORD"),
		DBName:     viper.GetString("DB_NAME"),
		JWTSecret:  secret,
		TokenTTL:   parseDuration(viper.GetString("TOKEN_TTL"), 0),
	}

	return cfg, nil
}

// DatabaseDSN builds a postgres connection string from the DB fields.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}
