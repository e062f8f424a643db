// Package storage defines persistence interfaces shared across the lessons
// service. Lesson state itself is in-memory only; storage holds operational
// telemetry.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RequestEvent is one handled HTTP request recorded for observability.
type RequestEvent struct {
	Timestamp time.Time
	Module    string
	Method    string
	Path      string
	Status    int
	Elapsed   time.Duration
}

// RequestLogStore appends and reads back the request journal.
type RequestLogStore interface {
	AppendRequestEvent(ctx context.Context, event RequestEvent) error
	ListRecentRequestEvents(ctx context.Context, limit int) ([]RequestEvent, error)
}
