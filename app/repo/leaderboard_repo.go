package repo

import (
	"wordquest/app/models"

	"gorm.io/gorm"
)

type LeaderboardRepository struct{ db *gorm.DB }

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) Create(e *models.LeaderboardEntry) error {
	return r.db.Create(e).Error
}

// ListRanked pages through entries in ranking order: highest score first,
// ties broken by earliest submission.
func (r *LeaderboardRepository) ListRanked(limit, offset int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := r.db.Order("score DESC, timestamp ASC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
