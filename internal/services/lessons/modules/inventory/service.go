package inventory

import (
	"fmt"
	"sort"

	"github.com/hypermedia-lab/lessons/internal/platform/slug"
	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

type appState struct {
	Items      map[int]string
	EquippedID int // 0 means nothing equipped
	NextItemID int
}

func freshState() *appState {
	return &appState{
		Items: map[int]string{
			1: "Wooden Sword",
			2: "Herbs",
		},
		NextItemID: 3,
	}
}

// itemView is the render model for one inventory item.
type itemView struct {
	ID   int
	Name string
	Slug string
}

func viewOf(id int, name string) itemView {
	return itemView{ID: id, Name: name, Slug: slug.Make(name)}
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

func notFound(itemID int) error {
	return apperrors.NotFound(fmt.Sprintf("item %d is not in the inventory", itemID))
}

func sortedViews(items map[int]string) []itemView {
	var views []itemView
	for id, name := range items {
		views = append(views, viewOf(id, name))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// listItems returns all items ordered by id plus the equipped item, if any.
func (s service) listItems() ([]itemView, int) {
	var (
		views    []itemView
		equipped int
	)
	s.store.Do(func(st *appState) {
		views = sortedViews(st.Items)
		equipped = st.EquippedID
	})
	return views, equipped
}

// addItem stores a new item under the next id and returns the full list
// along with the new item's view.
func (s service) addItem(name string) (itemView, []itemView, int) {
	var (
		added    itemView
		views    []itemView
		equipped int
	)
	s.store.Do(func(st *appState) {
		id := st.NextItemID
		st.Items[id] = name
		st.NextItemID++
		added = viewOf(id, name)
		views = sortedViews(st.Items)
		equipped = st.EquippedID
	})
	return added, views, equipped
}

func (s service) equipItem(itemID int) (itemView, error) {
	var (
		view itemView
		err  error
	)
	s.store.Do(func(st *appState) {
		name, ok := st.Items[itemID]
		if !ok {
			err = notFound(itemID)
			return
		}
		st.EquippedID = itemID
		view = viewOf(itemID, name)
	})
	return view, err
}

// removeItem deletes an item, clearing the equipped slot when the equipped
// item is the one removed. The id is never reissued.
func (s service) removeItem(itemID int) ([]itemView, int, error) {
	var (
		views    []itemView
		equipped int
		err      error
	)
	s.store.Do(func(st *appState) {
		if _, ok := st.Items[itemID]; !ok {
			err = notFound(itemID)
			return
		}
		delete(st.Items, itemID)
		if st.EquippedID == itemID {
			st.EquippedID = 0
		}
		views = sortedViews(st.Items)
		equipped = st.EquippedID
	})
	return views, equipped, err
}
