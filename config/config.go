package config

import (
	"fmt"
	"time"

	"github.com/socialai-lab/backend/pkg/simulate"
)

type Configs struct {
	Env      string
	LogLevel int

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Auth      AuthConfigs
	Session   SessionConfigs
	Simulator simulate.Configs
}

type ServerConfigs struct {
	Host string
	Port string

	AllowedOrigins []string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	// Driver selects the gorm backend: "sqlite" (default) or "mysql".
	Driver string

	// SQLitePath is the database file for the sqlite driver. ":memory:" gives
	// an ephemeral namespace.
	SQLitePath string

	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	// Addr enables the redis store backend when non-empty.
	Addr string

	// Prefix namespaces every key this installation writes.
	Prefix string
}

type AuthConfigs struct {
	TokenSecret     string
	TokenExpiration time.Duration
}

type SessionConfigs struct {
	Secret string
	Name   string
}
