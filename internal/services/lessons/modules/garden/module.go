// Package garden implements the community-garden lesson: plot CRUD over
// in-memory state with a polled status fragment.
package garden

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the garden lesson routes.
type Module struct{}

// New returns a garden module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "garden" }

// Mount wires garden route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService())
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.GardenPrefix, Handler: mux}, nil
}
