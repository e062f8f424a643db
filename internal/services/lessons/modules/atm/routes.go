package atm

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.ATMPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("POST "+prefix+"/login", h.handleLogin)
	mux.HandleFunc("POST "+prefix+"/withdraw", h.handleWithdraw)
	mux.HandleFunc("GET "+prefix+"/balance", h.handleBalance)
	mux.HandleFunc("GET "+prefix+"/home", h.handleHome)
	mux.HandleFunc("POST "+prefix+"/card/insert", h.handleInsertCard)
	mux.HandleFunc("POST "+prefix+"/card/remove", h.handleRemoveCard)
}
