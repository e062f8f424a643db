package garden

import (
	"fmt"
	"net/http"
	"strconv"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
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

func plotNode(view plotView) fragment.Node {
	return fragment.Node{
		ID:     fmt.Sprintf("plot-%d", view.ID),
		TestID: "plant-plot-" + view.Slug,
		Class:  "plot",
		Text:   view.Plant,
	}
}

func statusNode(needsWeeding bool) fragment.Node {
	text := "Garden is Thriving"
	if needsWeeding {
		text = "Needs Weeding"
	}
	return fragment.Node{
		ID:     "garden-status",
		TestID: "garden-status",
		Text:   text,
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	plots := h.service.listPlots()
	section := fragment.Node{Tag: "main", ID: "garden-root"}
	for _, view := range plots {
		section.Children = append(section.Children, plotNode(view))
	}
	section.Children = append(section.Children, statusNode(h.service.needsWeeding()))
	_ = fragment.Write(w, http.StatusOK, templates.Document("Community Garden", section.Component()))
}

func (h handlers) handlePlantSeed(w http.ResponseWriter, r *http.Request) {
	plantName, err := httpx.FormValue(r, "plant_name")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view := h.service.plantSeed(plantName)
	_ = fragment.Write(w, http.StatusOK, plotNode(view).Component())
}

func (h handlers) handleReplacePlant(w http.ResponseWriter, r *http.Request) {
	plotID, err := pathPlotID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view, err := h.service.replacePlant(plotID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, plotNode(view).Component())
}

func (h handlers) handlePullPlot(w http.ResponseWriter, r *http.Request) {
	plotID, err := pathPlotID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.service.pullPlot(plotID); err != nil {
		httpx.WriteError(w, err)
		return
	}
	// An empty 200 tells the client to remove the triggering element.
	w.WriteHeader(http.StatusOK)
}

func (h handlers) handleStatus(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, statusNode(h.service.needsWeeding()).Component())
}

func pathPlotID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.E(apperrors.KindMalformed, fmt.Sprintf("plot id %q is not a number", raw))
	}
	return id, nil
}
