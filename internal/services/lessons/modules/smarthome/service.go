package smarthome

import (
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

type appState struct {
	Playlist    string
	LightOn     bool
	Temperature int
}

func freshState() *appState {
	return &appState{
		Playlist:    "90s Rock Anthems",
		LightOn:     true,
		Temperature: 22,
	}
}

// dashboard is a point-in-time snapshot for rendering.
type dashboard struct {
	Playlist    string
	LightOn     bool
	Temperature int
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

func (s service) snapshot() dashboard {
	var snap dashboard
	s.store.Do(func(st *appState) {
		snap = dashboard{Playlist: st.Playlist, LightOn: st.LightOn, Temperature: st.Temperature}
	})
	return snap
}

func (s service) setPlaylist(name string) string {
	s.store.Do(func(st *appState) {
		st.Playlist = name
	})
	return name
}

// toggleLight flips the light and reports the new position.
func (s service) toggleLight() bool {
	var on bool
	s.store.Do(func(st *appState) {
		st.LightOn = !st.LightOn
		on = st.LightOn
	})
	return on
}

func (s service) temperature() int {
	var value int
	s.store.Do(func(st *appState) {
		value = st.Temperature
	})
	return value
}
