package garden

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.GardenPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("POST "+prefix+"/plots", h.handlePlantSeed)
	mux.HandleFunc("PUT "+prefix+"/plots/{id}", h.handleReplacePlant)
	mux.HandleFunc("DELETE "+prefix+"/plots/{id}", h.handlePullPlot)
	mux.HandleFunc("GET "+prefix+"/garden-status", h.handleStatus)
}
