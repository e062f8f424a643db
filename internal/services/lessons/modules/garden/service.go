package garden

import (
	"fmt"
	"sort"

	"github.com/hypermedia-lab/lessons/internal/platform/slug"
	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

// weedPlant is the plant name that flips the garden status to weedy.
const weedPlant = "Weed"

// replacementPlant is what a replaced plot always grows next.
const replacementPlant = "Carrot"

type appState struct {
	Plots      map[int]string
	NextPlotID int
}

func freshState() *appState {
	return &appState{
		Plots: map[int]string{
			1: "Tomato",
			2: weedPlant,
		},
		NextPlotID: 3,
	}
}

// plotView is the render model for one plot.
type plotView struct {
	ID    int
	Plant string
	Slug  string
}

func viewOf(id int, plant string) plotView {
	return plotView{ID: id, Plant: plant, Slug: slug.Make(plant)}
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

func (s service) plantSeed(plantName string) plotView {
	var view plotView
	s.store.Do(func(st *appState) {
		id := st.NextPlotID
		st.Plots[id] = plantName
		st.NextPlotID++
		view = viewOf(id, plantName)
	})
	return view
}

func (s service) replacePlant(plotID int) (plotView, error) {
	var (
		view plotView
		err  error
	)
	s.store.Do(func(st *appState) {
		if _, ok := st.Plots[plotID]; !ok {
			err = apperrors.NotFound(fmt.Sprintf("plot %d is not planted", plotID))
			return
		}
		st.Plots[plotID] = replacementPlant
		view = viewOf(plotID, replacementPlant)
	})
	return view, err
}

func (s service) pullPlot(plotID int) error {
	var err error
	s.store.Do(func(st *appState) {
		if _, ok := st.Plots[plotID]; !ok {
			err = apperrors.NotFound(fmt.Sprintf("plot %d is not planted", plotID))
			return
		}
		delete(st.Plots, plotID)
	})
	return err
}

func (s service) needsWeeding() bool {
	weedy := false
	s.store.Do(func(st *appState) {
		for _, plant := range st.Plots {
			if plant == weedPlant {
				weedy = true
				return
			}
		}
	})
	return weedy
}

// listPlots returns every plot ordered by id for stable rendering.
func (s service) listPlots() []plotView {
	var views []plotView
	s.store.Do(func(st *appState) {
		for id, plant := range st.Plots {
			views = append(views, viewOf(id, plant))
		}
	})
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}
