package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"roomNest/internal/api"
	"roomNest/internal/filter"
	"roomNest/internal/models"
)

func TestSearchRoomsWindowsBackendPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "9" {
			t.Errorf("pagination not forwarded: %v", q)
		}
		if q.Get("room_type") != "Phòng trọ" {
			t.Errorf("filter not forwarded: %v", q)
		}
		rooms := make([]models.Room, 9)
		for i := range rooms {
			rooms[i] = models.Room{ID: 10 + i, Name: "Phòng"}
		}
		json.NewEncoder(w).Encode(models.RoomListResponse{Rooms: rooms, TotalCount: 40})
	}))
	defer srv.Close()

	svc := &RoomService{API: api.NewClient(srv.URL, srv.Client(), nil)}
	w, err := svc.SearchRooms(context.Background(), filter.RoomFilter{RoomType: "Phòng trọ"}, 2, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.TotalCount != 40 || w.TotalPages != 5 || w.PageIndex != 2 || len(w.Items) != 9 {
		t.Fatalf("unexpected window: page=%d pages=%d total=%d items=%d", w.PageIndex, w.TotalPages, w.TotalCount, len(w.Items))
	}
}

func TestAmenitiesCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"amenities":[{"id":1,"name":"Máy lạnh","icon_url":"/icons/ac.svg"}]}`))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	svc := &RoomService{API: api.NewClient(srv.URL, srv.Client(), nil), Cache: rdb}

	for i := 0; i < 3; i++ {
		amenities, err := svc.Amenities(context.Background())
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if len(amenities) != 1 || amenities[0].Name != "Máy lạnh" {
			t.Fatalf("unexpected catalog %+v", amenities)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected one backend fetch, got %d", got)
	}
}

func TestAmenitiesCacheDownDegradesToBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amenities":[{"id":1,"name":"Wifi","icon_url":"/icons/wifi.svg"}]}`))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	mr.Close() // cache is unreachable from the start

	svc := &RoomService{API: api.NewClient(srv.URL, srv.Client(), nil), Cache: rdb}
	amenities, err := svc.Amenities(context.Background())
	if err != nil {
		t.Fatalf("cache trouble must not fail the catalog: %v", err)
	}
	if len(amenities) != 1 {
		t.Fatalf("unexpected catalog %+v", amenities)
	}
}
