package handlers

import (
	"net/http"

	"roomNest/internal/filter"
	"roomNest/internal/services"
)

type RoomHandler struct {
	Service *services.RoomService
}

// GetRooms is the room-listing search: the query string is parsed back into a
// room filter, forwarded to the backend, and the returned page is windowed.
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	f := filter.ParseRoomFilter(r.URL.Query())
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "limit", filter.DefaultPageSize)

	window, err := h.Service.SearchRooms(r.Context(), f, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, window)
}

func (h *RoomHandler) GetRoomBySlug(w http.ResponseWriter, r *http.Request) {
	slug := pathParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "missing room slug")
		return
	}

	room, err := h.Service.GetRoomBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.Service.Amenities(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"amenities": amenities})
}
