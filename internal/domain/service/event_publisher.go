package service

import (
	"context"
	"time"
)

// TaskEventType identifies what happened to a task.
type TaskEventType string

const (
	TaskEventCreated TaskEventType = "task.created"
	TaskEventUpdated TaskEventType = "task.updated"
	TaskEventToggled TaskEventType = "task.toggled"
	TaskEventDeleted TaskEventType = "task.deleted"
)

// TaskEvent is published after a task mutation has been committed.
type TaskEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       TaskEventType `json:"type"`
	TaskID     string        `json:"task_id"`
	UserID     string        `json:"user_id"`
	Status     string        `json:"status,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task lifecycle event
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
