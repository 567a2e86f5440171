package store

import (
	"context"
	"fmt"

	"github.com/Chagadiye/ctrl-vibe/ent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client  *ent.Client
	counter *sequenceCounter
}

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seq, err := r.counter.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seq).
		SetRequestID(data.RequestID).
		SetOperation(data.Operation).
		SetMethod(data.Method).
		SetEndpoint(data.Endpoint).
		SetStatusCode(data.StatusCode).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append api request event: %w", err)
	}
	return nil
}
