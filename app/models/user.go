package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Fullname     string `gorm:"size:120;not null"`
	Email        string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
