package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "10.776889" || q.Get("lon") != "106.700806" {
			t.Errorf("coordinates not forwarded: %v", q)
		}
		if q.Get("format") != "jsonv2" {
			t.Errorf("expected jsonv2 format, got %q", q.Get("format"))
		}
		if r.Header.Get("User-Agent") != "roomnest-test" {
			t.Errorf("user agent missing, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`{
			"display_name": "Nguyễn Huệ, Bến Nghé, Quận 1, Hồ Chí Minh",
			"lat": "10.7768890",
			"lon": "106.7008060",
			"address": {"suburb": "Bến Nghé", "city": "Hồ Chí Minh"}
		}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client(), srv.URL, "roomnest-test")
	place, err := g.Reverse(context.Background(), 10.776889, 106.700806)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.DisplayName != "Nguyễn Huệ, Bến Nghé, Quận 1, Hồ Chí Minh" {
		t.Fatalf("unexpected display name %q", place.DisplayName)
	}
	if place.Suburb != "Bến Nghé" || place.City != "Hồ Chí Minh" {
		t.Fatalf("address parts missing: %+v", place)
	}
	if place.Lat != 10.776889 || place.Lng != 106.700806 {
		t.Fatalf("coordinates mangled: %+v", place)
	}
}

func TestReverseUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client(), srv.URL, "roomnest-test")
	if _, err := g.Reverse(context.Background(), 10, 106); err == nil {
		t.Fatal("expected an error")
	}
}

func TestTileURL(t *testing.T) {
	got := TileURL("", 15, 25986, 14019)
	want := "https://tile.openstreetmap.org/15/25986/14019.png"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
	if got := TileURL("https://tiles.example.com/", 1, 2, 3); got != "https://tiles.example.com/1/2/3.png" {
		t.Fatalf("custom base mangled: %q", got)
	}
}
