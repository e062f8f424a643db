package inventory

import (
	"net/http"

	"github.com/hypermedia-lab/lessons/internal/services/lessons/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	prefix := routepath.InventoryPrefix
	mux.HandleFunc("GET "+prefix+"/{$}", h.handleIndex)
	mux.HandleFunc("GET "+prefix+"/items", h.handleListItems)
	mux.HandleFunc("POST "+prefix+"/items", h.handleAddItem)
	mux.HandleFunc("PUT "+prefix+"/items/equip/{id}", h.handleEquipItem)
	mux.HandleFunc("DELETE "+prefix+"/items/{id}", h.handleRemoveItem)
	mux.HandleFunc("GET "+prefix+"/treasure-chest", h.handleTreasureChest)
}
