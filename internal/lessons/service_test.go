package lessons

import (
	"context"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

type fakeFetcher struct {
	tracksFn func(ctx context.Context) ([]api.Track, error)
	trackFn  func(ctx context.Context, id string) (*api.Track, error)
}

func (f *fakeFetcher) Tracks(ctx context.Context) ([]api.Track, error) {
	return f.tracksFn(ctx)
}

func (f *fakeFetcher) Track(ctx context.Context, id string) (*api.Track, error) {
	return f.trackFn(ctx, id)
}

func TestLessonLookup(t *testing.T) {
	svc := NewService(&fakeFetcher{
		trackFn: func(ctx context.Context, id string) (*api.Track, error) {
			if id != "basics" {
				t.Fatalf("fetched track %q", id)
			}
			return &api.Track{
				ID: "basics",
				Lessons: []api.Lesson{
					{ID: "l1", Title: "Greetings"},
					{ID: "l2", Title: "Numbers"},
				},
			}, nil
		},
	})

	lesson, track, err := svc.Lesson(context.Background(), "basics", "l2")
	if err != nil {
		t.Fatalf("Lesson: %v", err)
	}
	if lesson.Title != "Numbers" {
		t.Errorf("lesson.Title = %q", lesson.Title)
	}
	if track.ID != "basics" {
		t.Errorf("track.ID = %q", track.ID)
	}
}

func TestLessonLookupMiss(t *testing.T) {
	svc := NewService(&fakeFetcher{
		trackFn: func(ctx context.Context, id string) (*api.Track, error) {
			return &api.Track{ID: id, Lessons: []api.Lesson{{ID: "l1"}}}, nil
		},
	})

	_, _, err := svc.Lesson(context.Background(), "basics", "nope")
	var notFound *ErrLessonNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("want ErrLessonNotFound, got %v", err)
	}
	if notFound.LessonID != "nope" || notFound.TrackID != "basics" {
		t.Errorf("notFound = %+v", notFound)
	}
}

func TestLessonLookupTransportFailure(t *testing.T) {
	netErr := &api.ErrNetwork{Op: "GET /tracks/basics", Err: errors.New("refused")}
	svc := NewService(&fakeFetcher{
		trackFn: func(ctx context.Context, id string) (*api.Track, error) {
			return nil, netErr
		},
	})

	_, _, err := svc.Lesson(context.Background(), "basics", "l1")
	var notFound *ErrLessonNotFound
	if errors.As(err, &notFound) {
		t.Fatal("transport failure must not look like a missing lesson")
	}
	if !api.IsNetwork(err) {
		t.Errorf("want network error, got %v", err)
	}
}
