package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Config struct {
	Server struct {
		Port      string
		JWTSecret string
	}
	Database   DatabaseConfig
	Production bool
	BcryptCost int
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s",
		c.Database.Host, c.Database.User, c.Database.Password, c.Database.Name, c.Database.Port)
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// Load reads configuration from the environment (singleton). The
// DB_PRODUCTION flag selects between the *_PROD and *_LOCAL variable sets.
func Load() (*Config, error) {
	once.Do(func() {
		c := &Config{}
		c.Production = os.Getenv("DB_PRODUCTION") == "true"

		if c.Production {
			c.Database = DatabaseConfig{
				Host:     os.Getenv("DB_HOST_PROD"),
				Port:     os.Getenv("DB_PORT"),
				User:     os.Getenv("DB_USER_PROD"),
				Password: os.Getenv("DB_PASSWORD_PROD"),
				Name:     os.Getenv("DB_NAME_PROD"),
			}
		} else {
			c.Database = DatabaseConfig{
				Host:     os.Getenv("DB_HOST_LOCAL"),
				Port:     os.Getenv("DB_PORT_LOCAL"),
				User:     os.Getenv("DB_USER_LOCAL"),
				Password: os.Getenv("DB_PASSWORD_LOCAL"),
				Name:     os.Getenv("DB_NAME_LOCAL"),
			}
		}

		c.Server.JWTSecret = os.Getenv("JWT_SECRET")
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("JWT_SECRET must be set")
			return
		}

		c.Server.Port = os.Getenv("PORT")
		if c.Server.Port == "" {
			c.Server.Port = "5000"
		}

		c.BcryptCost = 10
		if v := os.Getenv("BCRYPT_SALTROUND"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				cfgErr = fmt.Errorf("invalid BCRYPT_SALTROUND: %w", err)
				return
			}
			c.BcryptCost = n
		}

		cfg = c
	})
	return cfg, cfgErr
}

// Get returns the loaded config (must call Load first)
func Get() *Config {
	return cfg
}

// ResetForTest resets the singleton state (for testing only)
func ResetForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
