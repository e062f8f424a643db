package inventory

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

func itemNode(view itemView, highlighted bool) fragment.Node {
	class := "inventory-item"
	if highlighted {
		class = "inventory-item item-added"
	}
	return fragment.Node{
		Tag:    "li",
		ID:     fmt.Sprintf("item-%d", view.ID),
		TestID: "inventory-item-" + view.Slug,
		Class:  class,
		Text:   view.Name,
	}
}

// listNode renders the whole inventory. highlightID marks the freshly added
// item; 0 highlights nothing.
func listNode(views []itemView, equippedID, highlightID int) fragment.Node {
	list := fragment.Node{Tag: "ul", ID: "inventory-list", TestID: "inventory-list"}
	for _, view := range views {
		node := itemNode(view, view.ID == highlightID)
		if view.ID == equippedID {
			node.Attrs = append(node.Attrs, fragment.Attr{Name: "data-equipped", Value: "true"})
		}
		list.Children = append(list.Children, node)
	}
	return list
}

func equippedNode(view itemView) fragment.Node {
	return fragment.Node{
		ID:     "equipped-slot",
		TestID: "equipped-" + view.Slug,
		Class:  "equipped-slot",
		Text:   "Equipped: " + view.Name,
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	views, equipped := h.service.listItems()
	main := fragment.Node{
		Tag: "main",
		ID:  "inventory-root",
		Children: []fragment.Node{
			{Tag: "h1", Text: "Adventurer's Inventory"},
			listNode(views, equipped, 0),
		},
	}
	_ = fragment.Write(w, http.StatusOK, templates.Document("Adventurer's Inventory", main.Component()))
}

func (h handlers) handleListItems(w http.ResponseWriter, _ *http.Request) {
	views, equipped := h.service.listItems()
	_ = fragment.Write(w, http.StatusOK, listNode(views, equipped, 0).Component())
}

func (h handlers) handleAddItem(w http.ResponseWriter, r *http.Request) {
	name, err := httpx.FormValue(r, "itemName")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	added, views, equipped := h.service.addItem(name)
	_ = fragment.Write(w, http.StatusOK, listNode(views, equipped, added.ID).Component())
}

func (h handlers) handleEquipItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathItemID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view, err := h.service.equipItem(itemID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, equippedNode(view).Component())
}

func (h handlers) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathItemID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	views, equipped, err := h.service.removeItem(itemID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = fragment.Write(w, http.StatusOK, listNode(views, equipped, 0).Component())
}

// handleTreasureChest serves a fixed multi-item fragment; the client picks
// one element out of it with hx-select.
func (h handlers) handleTreasureChest(w http.ResponseWriter, _ *http.Request) {
	chest := fragment.Node{
		ID:     "treasure-chest",
		TestID: "treasure-chest",
		Children: []fragment.Node{
			{Tag: "li", ID: "loot-gold-coins", TestID: "loot-gold-coins", Text: "Gold Coins"},
			{Tag: "li", ID: "loot-ancient-map", TestID: "loot-ancient-map", Text: "Ancient Map"},
			{Tag: "li", ID: "loot-silver-dagger", TestID: "loot-silver-dagger", Text: "Silver Dagger"},
		},
	}
	_ = fragment.Write(w, http.StatusOK, chest.Component())
}

func pathItemID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.E(apperrors.KindMalformed, fmt.Sprintf("item id %q is not a number", raw))
	}
	return id, nil
}
