package dto

import (
	"errors"
	"net/url"
	"strconv"
)

var ErrMissingFields = errors.New("missing fields")

// ScoreSubmission uses a pointer for Score so a submitted zero is
// distinguishable from an absent field.
type ScoreSubmission struct {
	Player string `json:"player"`
	Score  *int   `json:"score"`
	Level  string `json:"level"`
}

func (s *ScoreSubmission) Validate() error {
	if s.Player == "" || s.Score == nil || s.Level == "" {
		return ErrMissingFields
	}
	return nil
}

type LeaderboardRow struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
	Level  string `json:"level"`
}

type LeaderboardQuery struct {
	Limit  int
	Offset int
}

// ParseLeaderboardQuery applies the defaults limit=10, offset=0. Values that
// do not parse as integers are a BadRequest; no upper bound on limit is
// enforced.
func ParseLeaderboardQuery(q url.Values) (LeaderboardQuery, error) {
	out := LeaderboardQuery{Limit: 10, Offset: 0}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, err
		}
		out.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, err
		}
		out.Offset = n
	}
	return out, nil
}
