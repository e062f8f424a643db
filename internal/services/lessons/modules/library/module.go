// Package library implements the book-request lesson: a requested book
// rendered as a fragment whose URL is pushed into browser history, and a
// deep-link route serving the same fragment.
package library

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the library lesson routes.
type Module struct{}

// New returns a library module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "library" }

// Mount wires library route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService())
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.LibraryPrefix, Handler: mux}, nil
}
