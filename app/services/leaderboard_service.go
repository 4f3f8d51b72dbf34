package services

import (
	"wordquest/app/dto"
	"wordquest/app/models"
	"wordquest/app/repo"
)

type LeaderboardService struct{ entries *repo.LeaderboardRepository }

func NewLeaderboardService(entries *repo.LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{entries: entries}
}

// Submit persists a score with a server-assigned timestamp. Level is free
// text here; only the word bank restricts levels. Scores may be negative.
func (s *LeaderboardService) Submit(player string, score int, level string) (*models.LeaderboardEntry, error) {
	e := &models.LeaderboardEntry{PlayerName: player, Score: score, Level: level}
	if err := s.entries.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Read returns one page of the ranking. Rank is the 1-based global position,
// so it stays continuous across pages.
func (s *LeaderboardService) Read(limit, offset int) ([]dto.LeaderboardRow, error) {
	entries, err := s.entries.ListRanked(limit, offset)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, dto.LeaderboardRow{
			Rank:   offset + i + 1,
			Player: e.PlayerName,
			Score:  e.Score,
			Level:  e.Level,
		})
	}
	return rows, nil
}
