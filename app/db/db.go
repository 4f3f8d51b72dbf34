package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	// DSN selects MySQL when set; otherwise Path names the embedded
	// sqlite database file.
	DSN  string
	Path string
}

func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	if cfg.DSN != "" {
		return gorm.Open(mysql.Open(cfg.DSN), gcfg)
	}
	return gorm.Open(sqlite.Open(cfg.Path), gcfg)
}
