package smarthome

import (
	"fmt"
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/httpx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func speakerNode(playlist string) fragment.Node {
	return fragment.Node{
		ID:     "living-room-speaker",
		TestID: "living-room-speaker-after",
		Class:  "device",
		Children: []fragment.Node{
			{Tag: "p", Class: "device-name", Text: "Living Room Speaker"},
			{Tag: "p", Class: "device-detail", Text: "Playlist: " + playlist},
		},
	}
}

func lightNode(on bool) fragment.Node {
	status := "Off"
	if on {
		status = "On"
	}
	return fragment.Node{
		ID:     "kitchen-light",
		TestID: "kitchen-light-after",
		Class:  "device",
		Children: []fragment.Node{
			{Tag: "p", Class: "device-name", Text: "Kitchen Light"},
			{Tag: "p", Class: "device-detail", Text: "Status: " + status},
		},
	}
}

func temperatureNode(celsius int) fragment.Node {
	return fragment.Node{
		ID:     "ambient-temperature",
		TestID: "ambient-temperature-after",
		Class:  "device",
		Children: []fragment.Node{
			{Tag: "p", Class: "device-name", Text: "Ambient Temperature"},
			{Tag: "p", Class: "device-detail", Text: fmt.Sprintf("%d°C", celsius)},
		},
	}
}

func dashboardNodes(snap dashboard) []fragment.Node {
	return []fragment.Node{
		speakerNode(snap.Playlist),
		lightNode(snap.LightOn),
		temperatureNode(snap.Temperature),
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{Tag: "main", ID: "smart-home-root", Children: dashboardNodes(h.service.snapshot())}
	_ = fragment.Write(w, http.StatusOK, templates.Document("Smart Home Dashboard", main.Component()))
}

func (h handlers) handleAllStatus(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, fragment.Group(dashboardNodes(h.service.snapshot())...))
}

func (h handlers) handleSetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := httpx.FormValue(r, "playlist_name")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, speakerNode(h.service.setPlaylist(playlist)).Component())
}

func (h handlers) handleToggleLight(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, lightNode(h.service.toggleLight()).Component())
}

func (h handlers) handleTemperature(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, temperatureNode(h.service.temperature()).Component())
}
