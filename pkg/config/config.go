// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// BankConfig configures the bank service.
type BankConfig struct {
	DBPath string `envconfig:"BANK_DB_PATH" default:"./bank.db"`
	Addr   string `envconfig:"BANK_ADDR" default:":8001"`
}

// BlogConfig configures the blog service.
type BlogConfig struct {
	DBPath string `envconfig:"BLOG_DB_PATH" default:"./posts.db"`
	Addr   string `envconfig:"BLOG_ADDR" default:":8002"`
}

// ChatConfig configures the chat service.
type ChatConfig struct {
	DBPath string `envconfig:"CHAT_DB_PATH" default:"./conversations.db"`
	Addr   string `envconfig:"CHAT_ADDR" default:":8003"`
}

// App aggregates the per-service configuration.
type App struct {
	Bank BankConfig
	Blog BlogConfig
	Chat ChatConfig
}

// Load reads configuration from the environment. A missing .env file is not
// an error; the system environment is used as-is.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
