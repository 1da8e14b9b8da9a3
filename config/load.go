package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/socialai-lab/backend/pkg/logger"
	"github.com/socialai-lab/backend/pkg/simulate"
)

// Load reads the TOML file at path when it exists, then applies environment
// overrides on top. Missing file and missing variables fall back to defaults
// suitable for a local run.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env:      "local",
		LogLevel: logger.INFO,
		ApiServer: ServerConfigs{
			Host:           "0.0.0.0",
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfigs{
			Driver:     "sqlite",
			SQLitePath: "socialai.db",
		},
		Redis: RedisConfigs{
			Prefix: "socialai",
		},
		Auth: AuthConfigs{
			TokenSecret:     "local-secret",
			TokenExpiration: 24 * time.Hour,
		},
		Session: SessionConfigs{
			Secret: "local-session-secret",
			Name:   "socialai_session",
		},
		Simulator: simulate.DefaultConfigs(),
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Configs{}, err
			}
		}
	}

	overrideString(&cfg.Env, "ENV")
	overrideString(&cfg.ApiServer.Host, "API_HOST")
	overrideString(&cfg.ApiServer.Port, "PORT")
	overrideString(&cfg.Database.Driver, "DB_DRIVER")
	overrideString(&cfg.Database.SQLitePath, "DB_SQLITE_PATH")
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideString(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Database.Database, "DB_NAME")
	overrideString(&cfg.Database.User, "DB_USER")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideString(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	overrideString(&cfg.Session.Secret, "SESSION_SECRET")

	return cfg, nil
}

func overrideString(target *string, env string) {
	if value := os.Getenv(env); value != "" {
		*target = value
	}
}
