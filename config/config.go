package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	// DSN is a MySQL connection string. When empty the server falls back
	// to the embedded sqlite file at Path.
	DSN  string
	Path string
}

type Session struct {
	Secret string
	ExpMin int
}

type Config struct {
	Server  Server
	DB      DB
	Session Session
}

// Load reads the optional yaml config file at path and applies environment
// overrides. An empty path means defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.path", "wordquest.db")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.exp_min", 1440)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB:     DB{DSN: v.GetString("db.dsn"), Path: v.GetString("db.path")},
	}
	cfg.Session.Secret = v.GetString("session.secret")
	cfg.Session.ExpMin = v.GetInt("session.exp_min")

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	if cfg.Session.Secret == "" {
		// Known insecure development fallback; set SESSION_SECRET in
		// any real deployment.
		cfg.Session.Secret = "supersecretkey"
	}
	if cfg.Session.ExpMin <= 0 {
		cfg.Session.ExpMin = 1440
	}
	return cfg, nil
}
