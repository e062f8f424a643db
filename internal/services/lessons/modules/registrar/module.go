// Package registrar implements the course-registration lesson. It holds no
// state; each route demonstrates one rejection status or the redirect
// signaling flow.
package registrar

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the registrar lesson routes.
type Module struct{}

// New returns a registrar module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "registrar" }

// Mount wires registrar route handlers.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{Prefix: routepath.RegistrarPrefix, Handler: mux}, nil
}
