package registrar

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.RegistrarPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("POST "+prefix+"/register/success", h.handleRegisterSuccess)
	mux.HandleFunc("POST "+prefix+"/register/full", h.handleRegisterFull)
	mux.HandleFunc("GET "+prefix+"/records/grades/forbidden", h.handleGradesForbidden)
	mux.HandleFunc("GET "+prefix+"/records/transcript/not-found", h.handleTranscriptNotFound)
	mux.HandleFunc("GET "+prefix+"/records/grades/payment-due", h.handleGradesPaymentDue)
	mux.HandleFunc("GET "+prefix+"/pay-tuition", h.handlePayTuition)
}
