package newsdesk

import (
	"time"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

// headlines is the fixed rotation served by the ticker.
var headlines = []string{
	"Markets Rally on Surprise Rate Cut",
	"City Council Approves Riverside Park",
	"Local Team Clinches Championship Berth",
}

type sidebarAlert struct {
	Message string
	At      time.Time
}

type appState struct {
	HeadlineIndex int
	Alerts        []sidebarAlert
}

func freshState() *appState {
	return &appState{
		Alerts: []sidebarAlert{{Message: "Weather advisory in effect until noon."}},
	}
}

type service struct {
	store *state.Store[*appState]
	now   func() time.Time
}

func newService(now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{store: state.NewStore(freshState), now: now}
}

func (s service) register(registry *state.Registry) {
	registry.Add(s.store)
}

// currentHeadline returns the headline at the rotation position without
// advancing it.
func (s service) currentHeadline() string {
	var headline string
	s.store.Do(func(st *appState) {
		headline = headlines[st.HeadlineIndex%len(headlines)]
	})
	return headline
}

// nextHeadline returns the current headline and advances the rotation.
func (s service) nextHeadline() string {
	var headline string
	s.store.Do(func(st *appState) {
		headline = headlines[st.HeadlineIndex%len(headlines)]
		st.HeadlineIndex = (st.HeadlineIndex + 1) % len(headlines)
	})
	return headline
}

// appendAlert stamps and stores a sidebar alert, returning the full list.
func (s service) appendAlert(message string) []sidebarAlert {
	var alerts []sidebarAlert
	s.store.Do(func(st *appState) {
		st.Alerts = append(st.Alerts, sidebarAlert{Message: message, At: s.now()})
		alerts = append(alerts, st.Alerts...)
	})
	return alerts
}

func (s service) listAlerts() []sidebarAlert {
	var alerts []sidebarAlert
	s.store.Do(func(st *appState) {
		alerts = append(alerts, st.Alerts...)
	})
	return alerts
}
