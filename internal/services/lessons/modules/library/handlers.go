package library

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

func bookNode(view bookView) fragment.Node {
	return fragment.Node{
		ID:     "book-detail",
		TestID: "book-" + view.Slug,
		Class:  "book-detail",
		Children: []fragment.Node{
			{Tag: "h2", Text: view.Title},
			{Tag: "p", Class: "book-author", Text: "by " + view.Author},
		},
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{
		Tag: "main",
		ID:  "library-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "Library Desk"},
			{Tag: "p", Text: "Request a book to see its detail page."},
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("Library Desk", main.Component()))
}

// handleRequestBook records the book and answers with its fragment while
// pushing the deep-link URL into the browser history.
func (h handlers) handleRequestBook(w http.ResponseWriter, r *http.Request) {
	title, err := httpx.FormValue(r, "title")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	author, err := httpx.FormValue(r, "author")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view := h.service.requestBook(title, author)
	pushURL := htmx.PushURL(routepath.LibraryPrefix + "/book/" + view.Slug)
	_ = htmx.WriteFragment(w, http.StatusOK, bookNode(view).Component(), pushURL)
}

func (h handlers) handleBookBySlug(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.bookBySlug(r.PathValue("slug"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = htmx.RenderPage(w, r, bookNode(view).Component(),
		templates.Document(view.Title, bookNode(view).Component()))
}
