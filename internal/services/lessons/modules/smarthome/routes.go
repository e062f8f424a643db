package smarthome

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.SmartHomePrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("GET "+prefix+"/all-status", h.handleAllStatus)
	mux.HandleFunc("POST "+prefix+"/playlist", h.handleSetPlaylist)
	mux.HandleFunc("POST "+prefix+"/toggle-light", h.handleToggleLight)
	mux.HandleFunc("GET "+prefix+"/temperature", h.handleTemperature)
}
