// Package postoffice implements the address-change lesson: multi-field form
// validation and simulated failure responses, with no state.
package postoffice

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/module"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

// Module provides the post-office lesson routes.
type Module struct{}

// New returns a post-office module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "postoffice" }

// Mount wires post-office route handlers.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{Prefix: routepath.PostOfficePrefix, Handler: mux}, nil
}
