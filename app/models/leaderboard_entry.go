package models

import "time"

// LeaderboardEntry is immutable once written; entries are never linked to
// user accounts and survive account deletion.
type LeaderboardEntry struct {
	ID         uint      `gorm:"primaryKey"`
	PlayerName string    `gorm:"size:100;not null"`
	Score      int       `gorm:"not null;index"`
	Level      string    `gorm:"size:20;not null"`
	Timestamp  time.Time `gorm:"autoCreateTime;index"`
}
