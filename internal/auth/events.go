package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// EventsChannel is the Redis channel auth state changes are published on.
const EventsChannel = "auth:events"

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

// Event announces that a user's identity changed.
type Event struct {
	Kind   EventKind `json:"kind"`
	UserID int64     `json:"user_id"`
}

func (e Event) Encode() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("decode auth event: %w", err)
	}
	if e.Kind != SignedIn && e.Kind != SignedOut {
		return Event{}, fmt.Errorf("decode auth event: unknown kind %q", e.Kind)
	}
	return e, nil
}

// Events publishes and consumes auth events. Every API instance subscribes,
// so a sign-out on one instance reaches boards held by the others.
type Events struct {
	rdb *redis.Client
	log *log.Logger
}

func NewEvents(rdb *redis.Client, logger *log.Logger) *Events {
	if logger == nil {
		logger = log.Default()
	}
	return &Events{rdb: rdb, log: logger}
}

func (e *Events) Publish(ctx context.Context, ev Event) error {
	payload, err := ev.Encode()
	if err != nil {
		return err
	}
	return e.rdb.Publish(ctx, EventsChannel, payload).Err()
}

// Listen calls handle for every event until ctx is done.
func (e *Events) Listen(ctx context.Context, handle func(Event)) error {
	sub := e.rdb.Subscribe(ctx, EventsChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", EventsChannel, err)
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			ev, err := DecodeEvent(msg.Payload)
			if err != nil {
				e.log.Warn("skipping auth event", "err", err)
				continue
			}
			handle(ev)
		}
	}
}
