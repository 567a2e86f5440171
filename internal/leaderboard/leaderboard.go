// Package leaderboard fetches the global standings and assigns display
// ranks.
package leaderboard

import (
	"context"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// Fetcher is the slice of the backend client the leaderboard needs.
type Fetcher interface {
	Leaderboard(ctx context.Context) (*api.LeaderboardPage, error)
	UserProgress(ctx context.Context, userID string) (*api.UserProgress, error)
}

// Row is one ranked leaderboard line.
type Row struct {
	Rank     int
	Username string
	XP       int
	Level    int
	Streak   int
}

// Board is a ranked snapshot of the standings.
type Board struct {
	Rows         []Row
	TotalPlayers int
	// YourRank is the current user's global rank, 0 when unknown.
	YourRank int
}

// Fetch loads the standings. Ranks are assigned 1..N by array position;
// the backend returns the list already sorted and its own rank fields are
// not trusted. The user's global rank comes from the progress endpoint and
// is best-effort: a failure there leaves YourRank zero rather than failing
// the whole board.
func Fetch(ctx context.Context, f Fetcher, userID string) (*Board, error) {
	page, err := f.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Rows:         make([]Row, 0, len(page.Leaderboard)),
		TotalPlayers: page.TotalPlayers,
	}
	for i, e := range page.Leaderboard {
		board.Rows = append(board.Rows, Row{
			Rank:     i + 1,
			Username: e.Username,
			XP:       e.XP,
			Level:    e.Level,
			Streak:   e.Streak,
		})
	}

	if userID != "" {
		if progress, err := f.UserProgress(ctx, userID); err == nil {
			board.YourRank = progress.Stats.GlobalRank
		}
	}
	return board, nil
}
