// Package progression owns user identity and the locally mirrored
// XP/level/streak/achievement values. The backend is authoritative for all
// of them; this store is a cache plus optimistic feedback, reconciled on
// every startup.
package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/store"
)

// ErrNoUser is returned by actions that need a resolved identity.
var ErrNoUser = errors.New("no user identity; run InitUser first")

// DefaultUsername is the display name before the backend assigns one.
const DefaultUsername = "Guest"

// Backend is the slice of the remote client this store needs.
type Backend interface {
	CreateGuest(ctx context.Context) (*api.GuestUser, error)
	Profile(ctx context.Context, userID string) (*api.Profile, error)
	UpdateUsername(ctx context.Context, userID, username string) error
	SubmitLesson(ctx context.Context, in api.SubmitLessonInput) (*api.LessonResult, error)
}

// State is a read-only copy of the store's fields.
type State struct {
	UserID       string
	Username     string
	XP           int
	Level        int
	Streak       int
	Achievements []string
	Hydrated     bool
}

// Store is the process-wide progression state. It is shared by unrelated
// features (lesson pages, the duel) and guarded by a mutex because
// bubbletea commands complete on their own goroutines.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	snapshots store.SnapshotRepo // nil disables persistence

	userID       string
	username     string
	xp           int
	level        int
	streak       int
	achievements []string
	achieved     map[string]bool
	hydrated     bool
}

// NewStore creates a progression store. snapshots may be nil (no
// persistence, used by tests and one-shot commands).
func NewStore(backend Backend, snapshots store.SnapshotRepo) *Store {
	return &Store{
		backend:   backend,
		snapshots: snapshots,
		username:  DefaultUsername,
		level:     1,
		achieved:  make(map[string]bool),
	}
}

// State returns a copy of the current progression values.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	achievements := make([]string, len(s.achievements))
	copy(achievements, s.achievements)
	return State{
		UserID:       s.userID,
		Username:     s.username,
		XP:           s.xp,
		Level:        s.level,
		Streak:       s.streak,
		Achievements: achievements,
		Hydrated:     s.hydrated,
	}
}

// Hydrated reports whether the reconciling fetch has completed. UI that
// depends on progression values must wait for this.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// LoadSnapshot restores the persisted cache so the UI can render known
// values immediately. It never sets the hydrated flag; the cache is not
// trusted until InitUser reconciles it against the backend.
func (s *Store) LoadSnapshot(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil || snap.Data.Progression == nil {
		return nil
	}

	p := snap.Data.Progression
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = p.UserID
	s.username = p.Username
	s.xp = p.XP
	s.level = p.Level
	s.streak = p.Streak
	s.setAchievements(p.Achievements)
	return nil
}

// InitUser resolves identity. With no persisted userID it registers a new
// guest and adopts the returned zero-state. With one, it fetches the
// authoritative profile and overwrites every local value — persisted
// values are a cache, never a source of truth. The hydrated flag is set
// when the attempt completes, success or failure.
func (s *Store) InitUser(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if userID == "" {
		guest, err := s.backend.CreateGuest(ctx)
		if err != nil {
			s.markHydrated()
			return fmt.Errorf("create guest: %w", err)
		}
		s.mu.Lock()
		s.userID = guest.UserID
		s.username = guest.Username
		s.xp = guest.XP
		s.level = guest.Level
		s.streak = guest.Streak
		s.setAchievements(nil)
		s.hydrated = true
		s.mu.Unlock()
		return s.persist(ctx)
	}

	profile, err := s.backend.Profile(ctx, userID)
	if err != nil {
		s.markHydrated()
		return fmt.Errorf("load profile: %w", err)
	}

	s.mu.Lock()
	s.username = profile.Username
	s.xp = profile.XP
	s.level = max(profile.Level, 1)
	s.streak = profile.Streak
	s.setAchievements(profile.Achievements)
	s.hydrated = true
	s.mu.Unlock()
	return s.persist(ctx)
}

// UpdateUsername confirms the rename with the backend before committing it
// locally. On failure nothing changes; the caller surfaces the backend's
// rejection reason and keeps the rejected value visible for correction.
func (s *Store) UpdateUsername(ctx context.Context, username string) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()
	if userID == "" {
		return ErrNoUser
	}

	if err := s.backend.UpdateUsername(ctx, userID, username); err != nil {
		return err
	}

	s.mu.Lock()
	s.username = username
	s.mu.Unlock()
	return s.persist(ctx)
}

// SubmitLesson forwards a finished attempt and overwrites local
// progression with the authoritative response. Newly returned achievement
// ids are merged with set-union semantics.
func (s *Store) SubmitLesson(ctx context.Context, trackID, lessonID string, score, timeSpent int) (*api.LessonResult, error) {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()
	if userID == "" {
		return nil, ErrNoUser
	}

	result, err := s.backend.SubmitLesson(ctx, api.SubmitLessonInput{
		UserID:    userID,
		TrackID:   trackID,
		LessonID:  lessonID,
		Score:     score,
		TimeSpent: timeSpent,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.xp = result.TotalXP
	s.level = max(result.Level, 1)
	s.streak = result.Streak
	for _, a := range result.NewAchievements {
		if !s.achieved[a.ID] {
			s.achieved[a.ID] = true
			s.achievements = append(s.achievements, a.ID)
		}
	}
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// AwardDuelXP applies a local-only XP increment when a duel round is won.
// This is the one deliberate exception to "backend is authoritative":
// there is no backend call, no version tag, and no reconciliation — a
// later profile reload overwrites it. Accepted inconsistency.
func (s *Store) AwardDuelXP(ctx context.Context, amount int) {
	s.mu.Lock()
	if s.userID == "" || amount <= 0 {
		s.mu.Unlock()
		return
	}
	s.xp += amount
	s.mu.Unlock()
	_ = s.persist(ctx)
}

// Reset discards identity and all progression, returning the store to its
// pre-first-run defaults. The persisted cache is cleared too.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.userID = ""
	s.username = DefaultUsername
	s.xp = 0
	s.level = 1
	s.streak = 0
	s.setAchievements(nil)
	s.hydrated = false
	s.mu.Unlock()

	if s.snapshots == nil {
		return nil
	}
	return s.snapshots.Clear(ctx)
}

// HasAchievement reports whether the given id is held locally.
func (s *Store) HasAchievement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.achieved[id]
}

func (s *Store) markHydrated() {
	s.mu.Lock()
	s.hydrated = true
	s.mu.Unlock()
}

// setAchievements replaces the achievement set. Callers hold the lock.
func (s *Store) setAchievements(ids []string) {
	s.achievements = nil
	s.achieved = make(map[string]bool)
	for _, id := range ids {
		if !s.achieved[id] {
			s.achieved[id] = true
			s.achievements = append(s.achievements, id)
		}
	}
}

// persist writes the current state to the snapshot repo.
func (s *Store) persist(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	s.mu.Lock()
	data := store.SnapshotData{
		Version: 1,
		Progression: &store.ProgressionData{
			UserID:       s.userID,
			Username:     s.username,
			XP:           s.xp,
			Level:        s.level,
			Streak:       s.streak,
			Achievements: append([]string(nil), s.achievements...),
		},
	}
	s.mu.Unlock()

	snap := &store.Snapshot{Timestamp: time.Now(), Data: data}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("persist progression: %w", err)
	}
	// Keep a short history; old snapshots have no replay value.
	_ = s.snapshots.Prune(ctx, 5)
	return nil
}
