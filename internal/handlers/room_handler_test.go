package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomNest/internal/api"
	"roomNest/internal/credentials"
	"roomNest/internal/filter"
	"roomNest/internal/models"
	"roomNest/internal/services"
)

func newRoomHandler(t *testing.T, backend http.HandlerFunc) *RoomHandler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, srv.Client(), credentials.FromContext{})
	return &RoomHandler{Service: &services.RoomService{API: client}}
}

func TestGetRoomsForwardsFilterAndWindows(t *testing.T) {
	h := newRoomHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("min_price"); got != "2000000" {
			t.Errorf("min_price = %q; want 2000000", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q; want 2", got)
		}
		json.NewEncoder(w).Encode(models.RoomListResponse{
			Rooms:      []models.Room{{ID: 10, Name: "Phòng quận 7"}},
			TotalCount: 11,
		})
	})

	req := httptest.NewRequest("GET", "/rooms?min_price=2000000&page=2&limit=9", nil)
	rec := httptest.NewRecorder()
	h.GetRooms(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var window filter.PageWindow[models.Room]
	if err := json.NewDecoder(rec.Body).Decode(&window); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if window.PageIndex != 2 || window.TotalPages != 2 || window.TotalCount != 11 {
		t.Errorf("window = page %d of %d, total %d; want page 2 of 2, total 11",
			window.PageIndex, window.TotalPages, window.TotalCount)
	}
	if len(window.Items) != 1 || window.Items[0].ID != 10 {
		t.Errorf("unexpected items: %+v", window.Items)
	}
}

func TestGetRoomBySlugNotFound(t *testing.T) {
	h := newRoomHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	req := httptest.NewRequest("GET", "/rooms/no-such-room?:slug=no-such-room", nil)
	rec := httptest.NewRecorder()
	h.GetRoomBySlug(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}

func TestGetRoomsBackendDown(t *testing.T) {
	h := newRoomHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	})

	req := httptest.NewRequest("GET", "/rooms", nil)
	rec := httptest.NewRecorder()
	h.GetRooms(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", rec.Code)
	}
}
