package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Warehouse DatabaseConfig `yaml:"warehouse" env-prefix:"WAREHOUSE_"`
	Learner   DatabaseConfig `yaml:"learner"   env-prefix:"LEARNER_"`
	Log       LogConfig      `yaml:"log"`
	CORS      CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds connection settings for one PostgreSQL database.
// The same struct serves both the warehouse and the learner store; env
// variable names are prefixed per store (WAREHOUSE_DB_HOST, LEARNER_DB_HOST).
type DatabaseConfig struct {
	Host     string `yaml:"host"     env:"DB_HOST"     env-default:"localhost"`
	Port     int    `yaml:"port"     env:"DB_PORT"     env-default:"5432"`
	Name     string `yaml:"name"     env:"DB_NAME"     env-required:"true"`
	User     string `yaml:"user"     env:"DB_USER"     env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD"`

	// SSLMode is "disable" or "require". "require" accepts self-signed
	// certificates (no chain verification).
	SSLMode string `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"require"`

	// Schema is the namespace queried by catalog introspection and table
	// listing (warehouse), or the one owning users/learner_activity
	// (learner store).
	Schema string `yaml:"schema" env:"DB_SCHEMA" env-default:"public"`

	MaxConns        int32         `yaml:"max_conns"          env:"DB_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DB_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DB_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DSN assembles a connection string from the discrete fields. The self-signed
// trust policy is applied on the pool config, not in the DSN, so sslmode here
// only toggles whether TLS is attempted at all.
func (c DatabaseConfig) DSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, sslmode)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
