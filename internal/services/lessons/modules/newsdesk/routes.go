package newsdesk

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.NewsDeskPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("GET "+prefix+"/headlines", h.handleHeadlines)
	mux.HandleFunc("POST "+prefix+"/broadcast/alert", h.handleBroadcastAlert)
	mux.HandleFunc("GET "+prefix+"/story/breaking", h.handleBreakingStory)
	mux.HandleFunc("POST "+prefix+"/broadcast/coordinated-update", h.handleCoordinatedUpdate)
}
