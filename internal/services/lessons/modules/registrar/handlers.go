package registrar

import (
	"fmt"
	"net/http"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/htmx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/httpx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
)

type handlers struct{}

func (handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{
		Tag: "main",
		ID:  "registrar-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "University Registrar"},
			{Tag: "p", Text: "Register for courses and request records below."},
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("University Registrar", main.Component()))
}

func (handlers) handleRegisterSuccess(w http.ResponseWriter, r *http.Request) {
	course, err := httpx.FormValue(r, "course")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	node := fragment.Node{
		ID:     "registration-result",
		TestID: "registration-success",
		Class:  "confirmation",
		Text:   fmt.Sprintf("You are registered for %s.", course),
	}
	_ = fragment.Write(w, http.StatusOK, node.Component())
}

func (handlers) handleRegisterFull(w http.ResponseWriter, r *http.Request) {
	course, err := httpx.FormValue(r, "course")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteError(w, apperrors.E(apperrors.KindConflict,
		fmt.Sprintf("%s is full; no seats remain this term", course)))
}

func (handlers) handleGradesForbidden(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, apperrors.E(apperrors.KindForbidden,
		"grades are visible to the student of record only"))
}

func (handlers) handleTranscriptNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, apperrors.NotFound("no transcript on file for that student"))
}

func (handlers) handleGradesPaymentDue(w http.ResponseWriter, _ *http.Request) {
	// An outstanding balance blocks the record; the client navigates to the
	// payment page instead of swapping a fragment.
	htmx.WriteEmpty(w, htmx.Redirect(routepath.RegistrarPrefix+"/pay-tuition"))
}

func (handlers) handlePayTuition(w http.ResponseWriter, _ *http.Request) {
	node := fragment.Node{
		ID:     "pay-tuition",
		TestID: "pay-tuition-page",
		Children: []fragment.Node{
			{Tag: "h1", Text: "Tuition Payment"},
			{Tag: "p", Text: "Your account has an outstanding balance. Settle it to unlock your records."},
		},
	}
	_ = fragment.Write(w, http.StatusOK, node.Component())
}
