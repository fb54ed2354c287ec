package handlers

import (
	"net/http"
	"strconv"

	"roomNest/internal/geo"
)

type GeoHandler struct {
	Geocoder *geo.Geocoder
}

// ReverseGeocode resolves a map pin into a display address. Called every time
// a user drops a pin while drawing a location filter.
func (h *GeoHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		respondError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	place, err := h.Geocoder.Reverse(r.Context(), lat, lng)
	if err != nil {
		respondError(w, http.StatusBadGateway, "geocoder unavailable")
		return
	}
	respondJSON(w, http.StatusOK, place)
}
