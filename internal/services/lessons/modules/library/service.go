package library

import (
	"fmt"

	"github.com/hypermedia-lab/lessons/internal/platform/slug"
	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

type appState struct {
	Title  string
	Author string
	Slug   string
}

// freshState holds no requested book; Slug empty means nothing on file.
func freshState() *appState {
	return &appState{}
}

// bookView is the render model for the requested book.
type bookView struct {
	Title  string
	Author string
	Slug   string
}

type service struct {
	store *state.Store[*appState]
}

func newService() service {
	return service{store: state.NewStore(freshState)}
}

func (s service) register(registry *state.Registry) {
	registry.Add(s.store)
}

// requestBook records the requested book and returns its view.
func (s service) requestBook(title, author string) bookView {
	view := bookView{Title: title, Author: author, Slug: slug.Make(title)}
	s.store.Do(func(st *appState) {
		st.Title = view.Title
		st.Author = view.Author
		st.Slug = view.Slug
	})
	return view
}

// bookBySlug returns the book on file when its slug matches.
func (s service) bookBySlug(bookSlug string) (bookView, error) {
	var (
		view bookView
		err  error
	)
	s.store.Do(func(st *appState) {
		if st.Slug == "" || st.Slug != bookSlug {
			err = apperrors.NotFound(fmt.Sprintf("no requested book matches %q", bookSlug))
			return
		}
		view = bookView{Title: st.Title, Author: st.Author, Slug: st.Slug}
	})
	return view, err
}
