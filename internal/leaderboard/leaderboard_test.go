package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

type fakeFetcher struct {
	page        *api.LeaderboardPage
	pageErr     error
	progress    *api.UserProgress
	progressErr error
}

func (f *fakeFetcher) Leaderboard(ctx context.Context) (*api.LeaderboardPage, error) {
	return f.page, f.pageErr
}

func (f *fakeFetcher) UserProgress(ctx context.Context, userID string) (*api.UserProgress, error) {
	return f.progress, f.progressErr
}

func TestRanksByPosition(t *testing.T) {
	f := &fakeFetcher{
		page: &api.LeaderboardPage{
			Leaderboard: []api.LeaderboardEntry{
				{Username: "asha", XP: 900},
				{Username: "ravi", XP: 900},
				{Username: "kiran", XP: 100},
			},
			TotalPlayers: 42,
		},
		progress: &api.UserProgress{Stats: api.UserStats{GlobalRank: 17}},
	}

	board, err := Fetch(context.Background(), f, "u1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	for i, row := range board.Rows {
		if row.Rank != i+1 {
			t.Errorf("row %d rank = %d", i, row.Rank)
		}
	}
	if board.TotalPlayers != 42 {
		t.Errorf("TotalPlayers = %d", board.TotalPlayers)
	}
	if board.YourRank != 17 {
		t.Errorf("YourRank = %d", board.YourRank)
	}
}

func TestProgressFailureIsBestEffort(t *testing.T) {
	f := &fakeFetcher{
		page:        &api.LeaderboardPage{Leaderboard: []api.LeaderboardEntry{{Username: "asha"}}},
		progressErr: errors.New("boom"),
	}

	board, err := Fetch(context.Background(), f, "u1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if board.YourRank != 0 {
		t.Errorf("YourRank = %d, want 0", board.YourRank)
	}
}

func TestBoardFailurePropagates(t *testing.T) {
	f := &fakeFetcher{pageErr: errors.New("down")}
	if _, err := Fetch(context.Background(), f, ""); err == nil {
		t.Fatal("want error")
	}
}
