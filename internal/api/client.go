// Package api is the stateless HTTP client for the ctrl-vibe backend.
// Each method is one request/response pair; no state is retained between
// calls. All progression math happens server-side — this package only
// moves values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL matches the backend's development default.
const DefaultBaseURL = "http://localhost:6969/api"

// Client talks to the ctrl-vibe backend.
type Client struct {
	baseURL string
	http    *http.Client
	events  EventSink
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithEventSink records every request as a local event.
func WithEventSink(s EventSink) Option {
	return func(c *Client) { c.events = s }
}

// New creates a Client for the given base URL. Empty baseURL falls back to
// the CTRLVIBE_API environment variable, then DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("CTRLVIBE_API")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateGuest registers a new guest account with zeroed progression.
func (c *Client) CreateGuest(ctx context.Context) (*GuestUser, error) {
	var out GuestUser
	if err := c.do(ctx, "create-guest", http.MethodPost, "/user/create-guest", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUsername asks the backend to rename the user. The caller must not
// commit the new name locally until this returns nil; a validation failure
// carries the backend's rejection reason.
func (c *Client) UpdateUsername(ctx context.Context, userID, username string) error {
	body := map[string]string{"user_id": userID, "username": username}
	return c.do(ctx, "update-username", http.MethodPut, "/user/update-username", body, nil)
}

// Profile fetches the authoritative progression snapshot.
func (c *Client) Profile(ctx context.Context, userID string) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, "profile", http.MethodGet, "/user/profile/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tracks fetches the ordered track list with nested lessons.
func (c *Client) Tracks(ctx context.Context) ([]Track, error) {
	var out []Track
	if err := c.do(ctx, "tracks", http.MethodGet, "/tracks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Track fetches a single track by id.
func (c *Client) Track(ctx context.Context, trackID string) (*Track, error) {
	var out Track
	if err := c.do(ctx, "track", http.MethodGet, "/tracks/"+trackID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitLesson reports a finished attempt. This is the sole authoritative
// progression mutation for lessons and is not idempotent; callers must not
// retry automatically after an ambiguous failure.
func (c *Client) SubmitLesson(ctx context.Context, in SubmitLessonInput) (*LessonResult, error) {
	var out LessonResult
	if err := c.do(ctx, "submit-lesson", http.MethodPost, "/game/submit-lesson", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard fetches the global leaderboard in backend order.
func (c *Client) Leaderboard(ctx context.Context) (*LeaderboardPage, error) {
	var out LeaderboardPage
	if err := c.do(ctx, "leaderboard", http.MethodGet, "/game/leaderboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserProgress fetches derived display stats (global rank, lessons done).
func (c *Client) UserProgress(ctx context.Context, userID string) (*UserProgress, error) {
	var out UserProgress
	if err := c.do(ctx, "user-progress", http.MethodGet, "/game/user/"+userID+"/progress", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Achievements fetches the full achievement catalog for display.
func (c *Client) Achievements(ctx context.Context) ([]Achievement, error) {
	var out []Achievement
	if err := c.do(ctx, "achievements", http.MethodGet, "/game/achievements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DuelRound fetches the target word for the given round index. Indexes at
// or beyond the round limit come back as a backend 404.
func (c *Client) DuelRound(ctx context.Context, index int) (*DuelRound, error) {
	var out DuelRound
	path := fmt.Sprintf("/duel/round/%d", index)
	if err := c.do(ctx, "duel-round", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartSimulation opens a conversation and returns the opening turn.
func (c *Client) StartSimulation(ctx context.Context, in StartSimulationInput) (*SimulationReply, error) {
	var out SimulationReply
	if err := c.do(ctx, "simulation-start", http.MethodPost, "/simulation/start", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Converse sends one recorded audio turn plus the entire history and
// returns the next turn with the server's replacement history.
func (c *Client) Converse(ctx context.Context, in ConverseInput, audio []byte) (*SimulationReply, error) {
	const op = "simulation-converse"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("audio", "recording.webm")
	if err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("%s: write audio: %w", op, err)
	}

	meta, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal metadata: %w", op, err)
	}
	if err := mw.WriteField("data", string(meta)); err != nil {
		return nil, fmt.Errorf("%s: write metadata: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: close form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/simulation/converse", &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out SimulationReply
	if err := c.send(req, op, "/simulation/converse", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRoomSession provisions a real-time media room for a simulation.
func (c *Client) CreateRoomSession(ctx context.Context, simulationType, userID string) (*RoomSession, error) {
	body := map[string]string{"simulation_type": simulationType, "user_id": userID}
	var out RoomSession
	if err := c.do(ctx, "room-create", http.MethodPost, "/livekit/create-session", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndRoomSession tears down a media room.
func (c *Client) EndRoomSession(ctx context.Context, roomName string) error {
	body := map[string]string{"room_name": roomName}
	return c.do(ctx, "room-end", http.MethodPost, "/livekit/end-session", body, nil)
}

// do runs one JSON request/response round-trip.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, op, path, out)
}

// send executes a prepared request, records the event, and decodes the
// response into out (when out is non-nil).
func (c *Client) send(req *http.Request, op, path string, out any) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.record(req.Context(), op, req.Method, path, 0, start, err)
		return &ErrNetwork{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
		c.record(req.Context(), op, req.Method, path, resp.StatusCode, start, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			decErr := fmt.Errorf("%s: decode response: %w", op, err)
			c.record(req.Context(), op, req.Method, path, resp.StatusCode, start, decErr)
			return decErr
		}
	}

	c.record(req.Context(), op, req.Method, path, resp.StatusCode, start, nil)
	return nil
}

// decodeErrorMessage extracts the backend's {"error": "..."} payload.
// Anything unparseable degrades to an empty message.
func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
