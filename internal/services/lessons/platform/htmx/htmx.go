// Package htmx implements the server side of the htmx contract: request
// detection, response header signaling, and fragment-vs-document rendering.
package htmx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
)

// RequestHeader is the htmx request marker header.
const RequestHeader = "HX-Request"

const (
	triggerHeader  = "HX-Trigger"
	redirectHeader = "HX-Redirect"
	pushURLHeader  = "HX-Push-Url"
)

// IsRequest reports whether the request was initiated by htmx.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// Signal instructs the client through exactly one htmx response header.
// The zero value carries no instruction. Signals are opaque to the server;
// values are never validated beyond being set once.
type Signal struct {
	header string
	value  string
}

// TriggerEvent asks the client to fire the named client-side event. The
// response still carries its rendered body.
func TriggerEvent(name string) Signal {
	return Signal{header: triggerHeader, value: name}
}

// Redirect asks the client to perform a full navigation to path. By
// convention the accompanying body is empty; use WriteEmpty.
func Redirect(path string) Signal {
	return Signal{header: redirectHeader, value: path}
}

// PushURL asks the client to replace the browser-visible URL with path
// without navigating.
func PushURL(path string) Signal {
	return Signal{header: pushURLHeader, value: path}
}

// IsZero reports whether the signal carries no instruction.
func (s Signal) IsZero() bool {
	return s.header == ""
}

func (s Signal) isNavigation() bool {
	return s.header == redirectHeader
}

func (s Signal) apply(h http.Header) {
	if s.IsZero() {
		return
	}
	h.Set(s.header, s.value)
}

// WriteEmpty responds 200 with no body and the signal's header set. This is
// the shape of every navigation-instruction response.
func WriteEmpty(w http.ResponseWriter, signal Signal) {
	signal.apply(w.Header())
	w.WriteHeader(http.StatusOK)
}

// WriteFragment renders component with the given status, applying any
// signals first. Redirect signals are refused: a redirect response must
// have an empty body and must go through WriteEmpty.
func WriteFragment(w http.ResponseWriter, status int, component templ.Component, signals ...Signal) error {
	for _, signal := range signals {
		if signal.isNavigation() {
			return fmt.Errorf("redirect signal requires an empty body")
		}
		signal.apply(w.Header())
	}
	return fragment.Write(w, status, component)
}

// RenderPage writes fragmentComponent for htmx requests and full for direct
// browser navigation. When fragmentComponent is nil the full document
// serves both paths.
func RenderPage(w http.ResponseWriter, r *http.Request, fragmentComponent, full templ.Component) error {
	if IsRequest(r) && fragmentComponent != nil {
		return fragment.Write(w, http.StatusOK, fragmentComponent)
	}
	if full == nil {
		full = fragmentComponent
	}
	return fragment.Write(w, http.StatusOK, full)
}
