package services

import (
	"testing"
	"time"
	"wordquest/app/models"
	"wordquest/app/repo"
)

func newLeaderboard(t *testing.T) (*LeaderboardService, *repo.LeaderboardRepository) {
	t.Helper()
	r := repo.NewLeaderboardRepository(newTestDB(t))
	return NewLeaderboardService(r), r
}

func TestReadOrdersByScoreThenTimestamp(t *testing.T) {
	scores, entries := newLeaderboard(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.LeaderboardEntry{
		{PlayerName: "Cara", Score: 50, Level: "easy", Timestamp: base.Add(2 * time.Minute)},
		{PlayerName: "Bo", Score: 80, Level: "hard", Timestamp: base.Add(time.Minute)},
		{PlayerName: "Ann", Score: 80, Level: "easy", Timestamp: base},
	}
	for i := range seed {
		if err := entries.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := scores.Read(10, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Equal scores rank by earlier submission.
	want := []string{"Ann", "Bo", "Cara"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		if row.Player != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, row.Player, want[i])
		}
		if row.Rank != i+1 {
			t.Fatalf("position %d: rank %d", i, row.Rank)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Score > rows[i-1].Score {
			t.Fatalf("scores increase at position %d", i)
		}
	}
}

func TestRankIsGlobalAcrossPages(t *testing.T) {
	scores, entries := newLeaderboard(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := models.LeaderboardEntry{
			PlayerName: "p",
			Score:      100 - i,
			Level:      "medium",
			Timestamp:  base.Add(time.Duration(i) * time.Second),
		}
		if err := entries.Create(&e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := scores.Read(2, 2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Rank != 3 || rows[1].Rank != 4 {
		t.Fatalf("ranks = %d, %d; want 3, 4", rows[0].Rank, rows[1].Rank)
	}
	if rows[0].Score != 98 || rows[1].Score != 97 {
		t.Fatalf("scores = %d, %d; want 98, 97", rows[0].Score, rows[1].Score)
	}
}

func TestSubmitAssignsTimestamp(t *testing.T) {
	scores, _ := newLeaderboard(t)

	before := time.Now().Add(-time.Second)
	e, err := scores.Submit("Ann", -5, "whatever")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if e.Timestamp.Before(before) {
		t.Fatalf("timestamp not server-assigned: %v", e.Timestamp)
	}

	// Negative scores and free-text levels are accepted as-is.
	rows, err := scores.Read(10, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 1 || rows[0].Score != -5 || rows[0].Level != "whatever" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestReadEmptyBoard(t *testing.T) {
	scores, _ := newLeaderboard(t)
	rows, err := scores.Read(10, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", rows)
	}
}
