package events

import (
	"context"
	"time"
)

const QueueName = "line-events"

type EventType string

const (
	EventTypeLineCreated       EventType = "line.created"
	EventTypeStopAppended      EventType = "stop.appended"
	EventTypeStopPatched       EventType = "stop.patched"
	EventTypeStopDeleted       EventType = "stop.deleted"
	EventTypeSchedulesReplaced EventType = "schedules.replaced"
)

type Event struct {
	Type           EventType              `json:"type"`
	LineIdentifier string                 `json:"line_identifier"`
	Timestamp      time.Time              `json:"timestamp"`
	Detail         map[string]interface{} `json:"detail,omitempty"`
}

// Publisher hands events off to whatever consumes them. Publishing is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event *Event)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *Event) {}
