package models

// Difficulty levels for words. Leaderboard entries carry a free-text level
// and are not validated against this set.
const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

func ValidLevel(level string) bool {
	switch level {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

type Word struct {
	ID    uint   `gorm:"primaryKey"`
	Text  string `gorm:"uniqueIndex;size:50;not null"`
	Level string `gorm:"size:20;not null"`
}
