package lessons

import (
	"context"
	"fmt"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// TrackFetcher is the slice of the backend client the lesson flow needs.
type TrackFetcher interface {
	Tracks(ctx context.Context) ([]api.Track, error)
	Track(ctx context.Context, id string) (*api.Track, error)
}

// ErrLessonNotFound reports a lesson id missing from a successfully
// fetched track. Transport failures surface as-is so callers can tell a
// dead backend from a bad id.
type ErrLessonNotFound struct {
	TrackID  string
	LessonID string
}

func (e *ErrLessonNotFound) Error() string {
	return fmt.Sprintf("lesson %q not found in track %q", e.LessonID, e.TrackID)
}

// Service resolves tracks and lessons against the backend.
type Service struct {
	fetcher TrackFetcher
}

func NewService(fetcher TrackFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Tracks returns the full learning track list.
func (s *Service) Tracks(ctx context.Context) ([]api.Track, error) {
	return s.fetcher.Tracks(ctx)
}

// Lesson fetches a track and resolves one lesson from it by id.
func (s *Service) Lesson(ctx context.Context, trackID, lessonID string) (*api.Lesson, *api.Track, error) {
	track, err := s.fetcher.Track(ctx, trackID)
	if err != nil {
		return nil, nil, err
	}
	for i := range track.Lessons {
		if track.Lessons[i].ID == lessonID {
			return &track.Lessons[i], track, nil
		}
	}
	return nil, nil, &ErrLessonNotFound{TrackID: trackID, LessonID: lessonID}
}
