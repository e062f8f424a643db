package postoffice

import (
	"net/http"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/httpx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
)

type handlers struct{}

// addressChangeFields lists every required form field in render order.
var addressChangeFields = []string{"street", "zip-code", "customer-id", "service-type"}

func (handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{
		Tag: "main",
		ID:  "post-office-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "Post Office"},
			{Tag: "p", Text: "File an address change below."},
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("Post Office", main.Component()))
}

func (handlers) handleAddressChange(w http.ResponseWriter, r *http.Request) {
	values := make(map[string]string, len(addressChangeFields))
	for _, field := range addressChangeFields {
		value, err := httpx.FormValue(r, field)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		values[field] = value
	}
	confirmation := fragment.Node{
		ID:     "address-change-result",
		TestID: "address-change-success",
		Class:  "confirmation",
		Children: []fragment.Node{
			{Tag: "h2", Text: "Address Change Filed"},
			{Tag: "p", Text: "Street: " + values["street"]},
			{Tag: "p", Text: "ZIP Code: " + values["zip-code"]},
			{Tag: "p", Text: "Customer ID: " + values["customer-id"]},
			{Tag: "p", Text: "Service Type: " + values["service-type"]},
		},
	}
	_ = fragment.Write(w, http.StatusOK, confirmation.Component())
}

func (handlers) handleInvalidZip(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, apperrors.NotFound("that ZIP code is not served by this office"))
}

// handleServerFailure returns a deliberate 500 so the client can exercise
// its error swap; it never panics.
func (handlers) handleServerFailure(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, apperrors.E(apperrors.KindInternal,
		"the sorting machine jammed; try again later"))
}
