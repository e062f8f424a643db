// Package inventory implements the adventurer-inventory lesson: item CRUD
// with slugged test ids, an equipped slot, and a multi-item treasure chest
// fragment for client-side selection.
package inventory

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the inventory lesson routes.
type Module struct{}

// New returns an inventory module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "inventory" }

// Mount wires inventory route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService())
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.InventoryPrefix, Handler: mux}, nil
}
