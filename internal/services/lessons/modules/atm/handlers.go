package atm

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/htmx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/httpx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func balanceNode(cents int64) fragment.Node {
	return fragment.Node{
		ID:     "atm-screen",
		TestID: "atm-balance",
		Class:  "atm-screen",
		Text:   "Balance: " + formatCents(cents),
	}
}

func promptNode(text string) fragment.Node {
	return fragment.Node{
		ID:     "atm-screen",
		TestID: "atm-prompt",
		Class:  "atm-screen",
		Text:   text,
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{
		Tag: "main",
		ID:  "atm-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "Cash Machine"},
			promptNode("Insert your card to begin."),
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("Cash Machine", main.Component()))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if _, err := httpx.FormValue(r, "pin"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	balance, err := h.service.login()
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, balanceNode(balance).Component())
}

func (h handlers) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	raw, err := httpx.FormValue(r, "amount")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	cents, err := parseCents(raw)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	balance, err := h.service.withdraw(cents)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, balanceNode(balance).Component())
}

// handleBalance redirects unauthenticated sessions to the welcome screen
// instead of rendering anything.
func (h handlers) handleBalance(w http.ResponseWriter, _ *http.Request) {
	balance, authenticated := h.service.balance()
	if !authenticated {
		htmx.WriteEmpty(w, htmx.Redirect(routepath.ATMPrefix+"/home"))
		return
	}
	_ = fragment.Write(w, http.StatusOK, balanceNode(balance).Component())
}

func (h handlers) handleHome(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK,
		promptNode("Welcome. Insert your card and enter your PIN.").Component())
}

func (h handlers) handleInsertCard(w http.ResponseWriter, _ *http.Request) {
	h.service.insertCard()
	_ = fragment.Write(w, http.StatusOK, promptNode("Card accepted. Enter your PIN.").Component())
}

func (h handlers) handleRemoveCard(w http.ResponseWriter, _ *http.Request) {
	h.service.removeCard()
	_ = fragment.Write(w, http.StatusOK, promptNode("Card returned. Goodbye.").Component())
}
