// Package module defines the contract every lesson module implements for
// service composition.
package module

import (
	"net/http"
	"time"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

// Dependencies carries shared infrastructure into a module mount.
type Dependencies struct {
	// States collects every lesson store so the service reset hook can
	// restore the whole process to its initial snapshot.
	States *state.Registry
	// Clock supplies timestamps for rendered fragments. Tests pin it to
	// keep rendering deterministic; a nil clock means time.Now.
	Clock func() time.Time
}

// Now returns the dependency clock's current time.
func (d Dependencies) Now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by service composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
