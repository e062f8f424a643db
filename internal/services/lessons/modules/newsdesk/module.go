// Package newsdesk implements the newsroom lesson: a cycling headline
// ticker, event-trigger broadcasts, and a coordinated main-story plus
// out-of-band sidebar update.
package newsdesk

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the news-desk lesson routes.
type Module struct{}

// New returns a news-desk module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "newsdesk" }

// Mount wires news-desk route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(deps.Now))
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.NewsDeskPrefix, Handler: mux}, nil
}
