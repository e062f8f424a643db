// Package smarthome implements the device-dashboard lesson: a speaker, a
// light, and a thermostat rendered as independent fragments over shared
// in-memory state.
package smarthome

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the smart-home lesson routes.
type Module struct{}

// New returns a smart-home module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "smarthome" }

// Mount wires smart-home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService())
	h.service.register(deps.States)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.SmartHomePrefix, Handler: mux}, nil
}
