package handlers

import (
	"net/http"

	"roomNest/internal/filter"
	"roomNest/internal/services"
)

type RoomieHandler struct {
	Service *services.RoomieService
}

// GetRoomies is the roommate-finder search. Unlike rooms, all filtering runs
// in this process: the full list is fetched (or served from cache), matched,
// ordered and paginated here.
func (h *RoomieHandler) GetRoomies(w http.ResponseWriter, r *http.Request) {
	f := filter.ParseRoomieFilter(r.URL.Query())
	ordering := r.URL.Query().Get("sort")
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "limit", filter.DefaultPageSize)

	window, err := h.Service.Search(r.Context(), f, ordering, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, window)
}

func (h *RoomieHandler) GetRoomieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid roomie id")
		return
	}

	roomie, err := h.Service.GetRoomieByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roomie)
}
