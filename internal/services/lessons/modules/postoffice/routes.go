package postoffice

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.PostOfficePrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("POST "+prefix+"/address-change", h.handleAddressChange)
	mux.HandleFunc("POST "+prefix+"/invalid-zip", h.handleInvalidZip)
	mux.HandleFunc("POST "+prefix+"/server-failure", h.handleServerFailure)
}
