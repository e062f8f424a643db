// Package lessons composes the lesson modules into one HTTP service:
// module mounts, the landing index, health and metrics endpoints, and the
// state reset hook used for test isolation.
package lessons

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hypermedia-lab/lessons/internal/platform/metrics"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/atm"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/garden"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/inventory"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/library"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/newsdesk"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/postoffice"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/registrar"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/modules/smarthome"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/httpx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
	"github.com/hypermedia-lab/lessons/internal/storage/sqlite"
	"github.com/hypermedia-lab/lessons/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

// Config holds the lessons service configuration.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string `env:"LESSONS_HTTP_ADDR" envDefault:":8080"`
	// JournalDSN locates the request journal; the default keeps it
	// process-local and gone on exit.
	JournalDSN string `env:"LESSONS_JOURNAL_DSN" envDefault:":memory:"`
	// Clock overrides time.Now for rendered timestamps. Tests pin it.
	Clock func() time.Time `env:"-"`
}

// lessonEntry pairs a module with its human title for the landing index.
type lessonEntry struct {
	module module.Module
	title  string
}

func lessonEntries() []lessonEntry {
	return []lessonEntry{
		{smarthome.New(), "Smart Home Dashboard"},
		{registrar.New(), "University Registrar"},
		{inventory.New(), "Adventurer's Inventory"},
		{postoffice.New(), "Post Office"},
		{library.New(), "Library Desk"},
		{newsdesk.New(), "News Desk"},
		{atm.New(), "Cash Machine"},
		{garden.New(), "Community Garden"},
	}
}

// Server is the composed lessons HTTP service.
type Server struct {
	config  Config
	states  *state.Registry
	metrics *metrics.Registry
	journal *sqlite.Store
	handler http.Handler
}

// NewServer builds the service: journal, metrics, state registry, and every
// lesson module mounted under its prefix.
func NewServer(cfg Config) (*Server, error) {
	journal, err := sqlite.Open(cfg.JournalDSN)
	if err != nil {
		return nil, fmt.Errorf("open request journal: %w", err)
	}

	srv := &Server{
		config:  cfg,
		states:  state.NewRegistry(),
		metrics: metrics.NewRegistry(),
		journal: journal,
	}

	emitter := telemetry.NewEmitter(journal)
	deps := module.Dependencies{States: srv.states, Clock: cfg.Clock}

	rootMux := http.NewServeMux()
	var links []templates.LessonLink
	for _, entry := range lessonEntries() {
		mount, err := entry.module.Mount(deps)
		if err != nil {
			journal.Close()
			return nil, fmt.Errorf("mount %s: %w", entry.module.ID(), err)
		}
		id := entry.module.ID()
		handler := emitter.Middleware(id, mount.Handler)
		handler = srv.metrics.Instrument(id, handler)
		rootMux.Handle(mount.Prefix+"/", handler)
		links = append(links, templates.LessonLink{
			ID:    id,
			Title: entry.title,
			Href:  mount.Prefix + "/",
		})
	}

	rootMux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		_ = fragment.Write(w, http.StatusOK,
			templates.Document("Hypermedia Lessons", templates.LessonIndex(links)))
	})
	rootMux.HandleFunc("GET "+routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	rootMux.Handle("GET "+routepath.Metrics, srv.metrics.Handler())
	rootMux.HandleFunc("POST "+routepath.StateReset, func(w http.ResponseWriter, _ *http.Request) {
		srv.states.ResetAll()
		w.WriteHeader(http.StatusNoContent)
	})

	srv.handler = httpx.Chain(rootMux, httpx.RequestID(), httpx.RecoverPanic())
	return srv, nil
}

// Handler returns the composed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// States returns the state registry backing the reset hook.
func (s *Server) States() *state.Registry {
	return s.states
}

// ListenAndServe serves until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.config.HTTPAddr,
		Handler: s.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("lessons shutting down addr=%s", s.config.HTTPAddr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases the request journal.
func (s *Server) Close() error {
	return s.journal.Close()
}
