// Package atm implements the cash-machine lesson: a card/PIN state machine
// with exact integer-cents balance arithmetic and redirect signaling for
// unauthenticated access.
package atm

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the atm lesson routes.
type Module struct{}

// New returns an atm module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "atm" }

// Mount wires atm route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService())
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ATMPrefix, Handler: mux}, nil
}
