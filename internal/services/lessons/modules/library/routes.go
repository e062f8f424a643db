package library

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.LibraryPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("POST "+prefix+"/request-book", h.handleRequestBook)
	mux.HandleFunc("GET "+prefix+"/book/{slug}", h.handleBookBySlug)
}
