package newsdesk

import (
	"fmt"
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/fragment"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/htmx"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/templates"
)

// breakingNewsEvent is the client-side event fired when an alert goes out.
const breakingNewsEvent = "newBreakingNews"

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func headlineNode(headline string) fragment.Node {
	return fragment.Node{
		ID:     "headline-ticker",
		TestID: "headline-ticker",
		Class:  "headline",
		Text:   headline,
	}
}

func breakingStoryNode() fragment.Node {
	return fragment.Node{
		ID:     "main-story",
		TestID: "breaking-story",
		Class:  "story",
		Children: []fragment.Node{
			{Tag: "h2", Text: "Breaking: Power Restored Downtown"},
			{Tag: "p", Text: "Crews repaired the substation ahead of schedule; service is back citywide."},
		},
	}
}

func sidebarNode(alerts []sidebarAlert, oob bool) fragment.Node {
	list := fragment.Node{
		Tag:     "ul",
		ID:      "sidebar-alerts",
		TestID:  "sidebar-alerts",
		SwapOOB: oob,
	}
	for i, alert := range alerts {
		item := fragment.Node{
			Tag:   "li",
			ID:    fmt.Sprintf("alert-%d", i+1),
			Class: "sidebar-alert",
			Text:  alert.Message,
		}
		if !alert.At.IsZero() {
			item.Attrs = append(item.Attrs, fragment.Attr{
				Name:  "data-at",
				Value: alert.At.UTC().Format("15:04:05"),
			})
		}
		list.Children = append(list.Children, item)
	}
	return list
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	main := fragment.Node{
		Tag: "main",
		ID:  "news-desk-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "News Desk"},
			headlineNode(h.service.currentHeadline()),
			sidebarNode(h.service.listAlerts(), false),
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("News Desk", main.Component()))
}

func (h handlers) handleHeadlines(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, headlineNode(h.service.nextHeadline()).Component())
}

// handleBroadcastAlert fires the breaking-news event. The confirmation body
// still renders; only redirect responses are empty.
func (h handlers) handleBroadcastAlert(w http.ResponseWriter, _ *http.Request) {
	confirmation := fragment.Node{
		ID:     "broadcast-result",
		TestID: "broadcast-sent",
		Text:   "Alert broadcast to all desks.",
	}
	_ = htmx.WriteFragment(w, http.StatusOK, confirmation.Component(),
		htmx.TriggerEvent(breakingNewsEvent))
}

func (h handlers) handleBreakingStory(w http.ResponseWriter, _ *http.Request) {
	_ = fragment.Write(w, http.StatusOK, breakingStoryNode().Component())
}

// handleCoordinatedUpdate returns the main story plus the sidebar list as
// an out-of-band fragment so one response updates two DOM targets.
func (h handlers) handleCoordinatedUpdate(w http.ResponseWriter, _ *http.Request) {
	alerts := h.service.appendAlert("Sidebar updated alongside the main story.")
	_ = fragment.Write(w, http.StatusOK, fragment.Group(
		breakingStoryNode(),
		sidebarNode(alerts, true),
	))
}
