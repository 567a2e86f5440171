package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestCreateGuest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/user/create-guest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": "u-123", "username": "Guest", "xp": 0, "level": 1, "streak": 0,
		})
	})

	guest, err := c.CreateGuest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if guest.UserID != "u-123" {
		t.Errorf("expected user id u-123, got %q", guest.UserID)
	}
	if guest.XP != 0 || guest.Level != 1 || guest.Streak != 0 {
		t.Errorf("expected zeroed progression, got %+v", guest)
	}
}

func TestSubmitLesson_WireShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var got map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		for _, key := range []string{"user_id", "track_id", "lesson_id", "score", "time_spent"} {
			if _, ok := got[key]; !ok {
				t.Errorf("request body missing %q", key)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"total_xp": 110, "level": 2, "level_up": true, "streak": 1,
			"new_achievements": []map[string]any{{"id": "first_lesson", "name": "First Steps"}},
			"lesson_completed": true,
		})
	})

	result, err := c.SubmitLesson(context.Background(), SubmitLessonInput{
		UserID: "u-1", TrackID: "basics", LessonID: "l-1", Score: 100, TimeSpent: 42,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalXP != 110 || result.Level != 2 || !result.LevelUp {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.NewAchievements) != 1 || result.NewAchievements[0].ID != "first_lesson" {
		t.Errorf("expected first_lesson achievement, got %+v", result.NewAchievements)
	}
}

func TestUpdateUsername_ValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username already taken"})
	})

	err := c.UpdateUsername(context.Background(), "u-1", "taken")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Username already taken" {
		t.Errorf("expected backend message, got %q", apiErr.Message)
	}
	if !IsValidation(err) {
		t.Error("expected IsValidation to be true")
	}
	if IsNetwork(err) {
		t.Error("API error must not classify as network error")
	}
}

func TestDuelRound_NotFoundPastLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "No such round"})
	})

	_, err := c.DuelRound(context.Background(), 5)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on
	c := New(server.URL)

	_, err := c.Tracks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNetwork(err) {
		t.Fatalf("expected network classification, got %v", err)
	}
	if IsNotFound(err) || IsValidation(err) {
		t.Error("network error must not classify as backend error")
	}
}

func TestConverse_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		file, _, err := r.FormFile("audio")
		if err != nil {
			t.Fatalf("missing audio part: %v", err)
		}
		defer file.Close()
		blob, _ := io.ReadAll(file)
		if string(blob) != "fake-audio" {
			t.Errorf("audio payload mismatch: %q", blob)
		}

		var meta ConverseInput
		if err := json.Unmarshal([]byte(r.FormValue("data")), &meta); err != nil {
			t.Fatalf("invalid data part: %v", err)
		}
		if len(meta.History) != 2 {
			t.Errorf("expected full history replay, got %d turns", len(meta.History))
		}

		json.NewEncoder(w).Encode(SimulationReply{
			Text:     "ಚೆನ್ನಾಗಿದೆ!",
			AudioURL: "http://example.com/a.mp3",
			History: []ConversationTurn{
				{Role: "system", Content: "setup"},
				{Role: "user", Content: "turn"},
				{Role: "assistant", Content: "ಚೆನ್ನಾಗಿದೆ!"},
			},
		})
	})

	reply, err := c.Converse(context.Background(), ConverseInput{
		SimulationType: "auto_driver_sim",
		UserID:         "u-1",
		History: []ConversationTurn{
			{Role: "system", Content: "setup"},
			{Role: "user", Content: "turn"},
		},
	}, []byte("fake-audio"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reply.History) != 3 {
		t.Errorf("expected server history of 3 turns, got %d", len(reply.History))
	}
}

func TestLeaderboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"leaderboard": []map[string]any{
				{"username": "a", "xp": 300, "level": 3, "streak": 2},
				{"username": "b", "xp": 200, "level": 2, "streak": 0},
			},
			"total_players": 17,
		})
	})

	page, err := c.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPlayers != 17 {
		t.Errorf("expected 17 players, got %d", page.TotalPlayers)
	}
	if len(page.Leaderboard) != 2 || page.Leaderboard[0].Username != "a" {
		t.Errorf("backend ordering must be preserved: %+v", page.Leaderboard)
	}
}
