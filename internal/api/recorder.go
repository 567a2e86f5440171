package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Chagadiye/ctrl-vibe/internal/store"
)

// EventSink receives one record per backend request. Implementations must
// tolerate being called from tea.Cmd goroutines.
type EventSink interface {
	AppendAPIRequest(ctx context.Context, data store.APIRequestEventData) error
}

// record appends a request event. Recording failures degrade to a stderr
// warning; they never fail the request itself.
func (c *Client) record(ctx context.Context, op, method, path string, status int, start time.Time, reqErr error) {
	if c.events == nil {
		return
	}

	data := store.APIRequestEventData{
		RequestID:  uuid.New().String(),
		Operation:  op,
		Method:     method,
		Endpoint:   path,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    reqErr == nil,
	}
	if reqErr != nil {
		data.ErrorMessage = reqErr.Error()
	}

	// Use a detached context: the request's context may already be
	// cancelled, and the event should still land.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := c.events.AppendAPIRequest(logCtx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log api request event: %v\n", err)
	}
}
