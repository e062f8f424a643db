// Package telemetry records operational request events through a
// storage.RequestLogStore.
package telemetry

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/hypermedia-lab/lessons/internal/storage"
)

// Emitter appends request events to the journal. A nil emitter or nil store
// is a no-op, so callers never need to guard emission.
type Emitter struct {
	store storage.RequestLogStore
	clock func() time.Time
}

// NewEmitter creates an emitter over store.
func NewEmitter(store storage.RequestLogStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records one request event, stamping the current time when unset.
func (e *Emitter) Emit(ctx context.Context, event storage.RequestEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		clock := e.clock
		if clock == nil {
			clock = time.Now
		}
		event.Timestamp = clock().UTC()
	}
	return e.store.AppendRequestEvent(ctx, event)
}

// Middleware observes every request handled by next under the module label.
// Journal failures are logged, never surfaced to the client.
func (e *Emitter) Middleware(module string, next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	if e == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		err := e.Emit(r.Context(), storage.RequestEvent{
			Module:  module,
			Method:  r.Method,
			Path:    r.URL.Path,
			Status:  recorder.status,
			Elapsed: time.Since(start),
		})
		if err != nil {
			log.Printf("telemetry emit module=%s path=%s: %v", module, r.URL.Path, err)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
