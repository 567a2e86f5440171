package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/store"
)

// fakeBackend implements Backend with overridable functions.
type fakeBackend struct {
	createGuest    func(ctx context.Context) (*api.GuestUser, error)
	profile        func(ctx context.Context, userID string) (*api.Profile, error)
	updateUsername func(ctx context.Context, userID, username string) error
	submitLesson   func(ctx context.Context, in api.SubmitLessonInput) (*api.LessonResult, error)
}

func (f *fakeBackend) CreateGuest(ctx context.Context) (*api.GuestUser, error) {
	return f.createGuest(ctx)
}

func (f *fakeBackend) Profile(ctx context.Context, userID string) (*api.Profile, error) {
	return f.profile(ctx, userID)
}

func (f *fakeBackend) UpdateUsername(ctx context.Context, userID, username string) error {
	return f.updateUsername(ctx, userID, username)
}

func (f *fakeBackend) SubmitLesson(ctx context.Context, in api.SubmitLessonInput) (*api.LessonResult, error) {
	return f.submitLesson(ctx, in)
}

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	latest *store.Snapshot
}

func (m *memSnapshots) Save(ctx context.Context, snap *store.Snapshot) error {
	m.latest = snap
	return nil
}

func (m *memSnapshots) Latest(ctx context.Context) (*store.Snapshot, error) {
	return m.latest, nil
}

func (m *memSnapshots) Prune(ctx context.Context, keep int) error { return nil }

func (m *memSnapshots) Clear(ctx context.Context) error {
	m.latest = nil
	return nil
}

func TestInitUser_FreshGuest(t *testing.T) {
	backend := &fakeBackend{
		createGuest: func(ctx context.Context) (*api.GuestUser, error) {
			return &api.GuestUser{UserID: "u-new", Username: "Guest", XP: 0, Level: 1, Streak: 0}, nil
		},
	}
	s := NewStore(backend, &memSnapshots{})

	if s.Hydrated() {
		t.Fatal("store must not be hydrated before InitUser")
	}
	if err := s.InitUser(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := s.State()
	if state.UserID != "u-new" {
		t.Errorf("expected adopted user id, got %q", state.UserID)
	}
	if state.XP != 0 || state.Level != 1 || state.Streak != 0 || len(state.Achievements) != 0 {
		t.Errorf("expected zero-state, got %+v", state)
	}
	if !state.Hydrated {
		t.Error("expected hydrated after InitUser")
	}
}

func TestInitUser_ReconcilesAgainstProfile(t *testing.T) {
	backend := &fakeBackend{
		profile: func(ctx context.Context, userID string) (*api.Profile, error) {
			if userID != "u-1" {
				t.Errorf("expected persisted user id, got %q", userID)
			}
			return &api.Profile{
				Username: "remote-name", XP: 480, Level: 3, Streak: 7,
				Achievements: []string{"first_lesson", "streak_3"},
			}, nil
		},
	}
	snaps := &memSnapshots{latest: &store.Snapshot{Data: store.SnapshotData{
		Version: 1,
		Progression: &store.ProgressionData{
			UserID: "u-1", Username: "stale-name", XP: 999, Level: 9, Streak: 99,
			Achievements: []string{"bogus_local"},
		},
	}}}

	s := NewStore(backend, snaps)
	if err := s.LoadSnapshot(context.Background()); err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if err := s.InitUser(context.Background()); err != nil {
		t.Fatalf("init user: %v", err)
	}

	state := s.State()
	if state.Username != "remote-name" || state.XP != 480 || state.Level != 3 || state.Streak != 7 {
		t.Errorf("local cache must be overwritten by profile, got %+v", state)
	}
	if len(state.Achievements) != 2 || s.HasAchievement("bogus_local") {
		t.Errorf("achievements must come from the profile, got %v", state.Achievements)
	}
}

func TestInitUser_ProfileFailureStillHydrates(t *testing.T) {
	backend := &fakeBackend{
		profile: func(ctx context.Context, userID string) (*api.Profile, error) {
			return nil, &api.ErrNetwork{Op: "profile", Err: errors.New("dial tcp: refused")}
		},
	}
	snaps := &memSnapshots{latest: &store.Snapshot{Data: store.SnapshotData{
		Progression: &store.ProgressionData{UserID: "u-1", Username: "cached", XP: 10, Level: 1},
	}}}

	s := NewStore(backend, snaps)
	_ = s.LoadSnapshot(context.Background())
	err := s.InitUser(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !s.Hydrated() {
		t.Error("hydrated flag must be set even when reconciliation fails")
	}
	if got := s.State().Username; got != "cached" {
		t.Errorf("cached values survive a failed reconcile, got %q", got)
	}
}

func TestSubmitLesson_OverwritesAndMergesAchievements(t *testing.T) {
	backend := &fakeBackend{
		createGuest: func(ctx context.Context) (*api.GuestUser, error) {
			return &api.GuestUser{UserID: "u-1", Username: "Guest", Level: 1}, nil
		},
		submitLesson: func(ctx context.Context, in api.SubmitLessonInput) (*api.LessonResult, error) {
			return &api.LessonResult{
				TotalXP: 110, Level: 2, LevelUp: true, Streak: 1,
				NewAchievements: []api.Achievement{{ID: "first_lesson", Name: "First Steps"}},
				LessonCompleted: true,
			}, nil
		},
	}
	s := NewStore(backend, nil)
	if err := s.InitUser(context.Background()); err != nil {
		t.Fatal(err)
	}

	result, err := s.SubmitLesson(context.Background(), "basics", "l-1", 100, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.LessonCompleted {
		t.Error("expected completed lesson")
	}

	state := s.State()
	if state.XP != 110 || state.Level != 2 || state.Streak != 1 {
		t.Errorf("expected authoritative overwrite, got %+v", state)
	}
	if !s.HasAchievement("first_lesson") {
		t.Error("expected first_lesson achievement")
	}

	// Resubmitting the same achievement id must not duplicate it.
	if _, err := s.SubmitLesson(context.Background(), "basics", "l-1", 100, 40); err != nil {
		t.Fatal(err)
	}
	if got := len(s.State().Achievements); got != 1 {
		t.Errorf("achievement merge must be idempotent, got %d entries", got)
	}
}

func TestSubmitLesson_RequiresIdentity(t *testing.T) {
	s := NewStore(&fakeBackend{}, nil)
	_, err := s.SubmitLesson(context.Background(), "basics", "l-1", 90, 10)
	if !errors.Is(err, ErrNoUser) {
		t.Fatalf("expected ErrNoUser, got %v", err)
	}
}

func TestUpdateUsername_FailureLeavesNameUnchanged(t *testing.T) {
	rejection := &api.APIError{StatusCode: 400, Message: "Username already taken"}
	backend := &fakeBackend{
		createGuest: func(ctx context.Context) (*api.GuestUser, error) {
			return &api.GuestUser{UserID: "u-1", Username: "Guest", Level: 1}, nil
		},
		updateUsername: func(ctx context.Context, userID, username string) error {
			return rejection
		},
	}
	s := NewStore(backend, nil)
	_ = s.InitUser(context.Background())

	err := s.UpdateUsername(context.Background(), "taken")
	if !errors.Is(err, rejection) {
		t.Fatalf("expected backend rejection to propagate, got %v", err)
	}
	if got := s.State().Username; got != "Guest" {
		t.Errorf("username must be unchanged after failure, got %q", got)
	}
}

func TestAwardDuelXP(t *testing.T) {
	backend := &fakeBackend{
		createGuest: func(ctx context.Context) (*api.GuestUser, error) {
			return &api.GuestUser{UserID: "u-1", Username: "Guest", Level: 1}, nil
		},
	}
	s := NewStore(backend, nil)

	// Without identity the award is a no-op.
	s.AwardDuelXP(context.Background(), 10)
	if got := s.State().XP; got != 0 {
		t.Fatalf("award before identity must be a no-op, got %d", got)
	}

	_ = s.InitUser(context.Background())
	s.AwardDuelXP(context.Background(), 10)
	s.AwardDuelXP(context.Background(), 10)
	if got := s.State().XP; got != 20 {
		t.Errorf("expected 20 xp, got %d", got)
	}
}

func TestReset(t *testing.T) {
	backend := &fakeBackend{
		createGuest: func(ctx context.Context) (*api.GuestUser, error) {
			return &api.GuestUser{UserID: "u-1", Username: "somebody", XP: 50, Level: 1}, nil
		},
	}
	snaps := &memSnapshots{}
	s := NewStore(backend, snaps)
	_ = s.InitUser(context.Background())

	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	state := s.State()
	if state.UserID != "" || state.Username != DefaultUsername || state.XP != 0 || state.Level != 1 {
		t.Errorf("expected defaults after reset, got %+v", state)
	}
	if state.Hydrated {
		t.Error("reset must clear the hydrated flag")
	}
	if snaps.latest != nil {
		t.Error("reset must clear the persisted cache")
	}
}
