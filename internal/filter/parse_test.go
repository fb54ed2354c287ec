package filter

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseMalformedNumberFallsBackToUnset(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "abc")
	q.Set("max_price", "3000000")

	f := ParseRoomFilter(q)
	if f.MinPrice != nil {
		t.Fatalf("expected min_price unset, got %v", *f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 3000000 {
		t.Fatalf("expected max_price 3000000, got %v", f.MaxPrice)
	}
}

func TestParseUnknownKeysIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("utm_source", "zalo")
	q.Set("fbclid", "xyz")
	q.Set("gender", "Nữ")

	f := ParseRoomieFilter(q)
	want := RoomieFilter{Gender: "Nữ"}
	if !reflect.DeepEqual(f, want) {
		t.Fatalf("want %+v got %+v", want, f)
	}
}

func TestParseEnumOutsideVocabularyUnset(t *testing.T) {
	q := url.Values{}
	q.Set("gender", "female")
	q.Set("room_type", "Biệt thự")

	if f := ParseRoomieFilter(q); f.Gender != "" {
		t.Fatalf("expected gender unset, got %q", f.Gender)
	}
	if f := ParseRoomFilter(q); f.RoomType != "" {
		t.Fatalf("expected room_type unset, got %q", f.RoomType)
	}
}

func TestParseLoneLatitudeYieldsNoLocation(t *testing.T) {
	q := url.Values{}
	q.Set("latitude", "10.77")

	if f := ParseRoomFilter(q); f.Location != nil {
		t.Fatalf("expected no location, got %+v", f.Location)
	}
}

func TestParseLocationDefaultRadius(t *testing.T) {
	q := url.Values{}
	q.Set("latitude", "10.77")
	q.Set("longitude", "106.7")

	f := ParseRoomFilter(q)
	if f.Location == nil {
		t.Fatal("expected location to be set")
	}
	if f.Location.RadiusKm != defaultRadiusKm {
		t.Fatalf("expected default radius %v, got %v", float64(defaultRadiusKm), f.Location.RadiusKm)
	}
}

func TestParseAmenitiesDropsBadIDs(t *testing.T) {
	q := url.Values{}
	q.Set("amenities", "1,x,3,")

	f := ParseRoomFilter(q)
	if !reflect.DeepEqual(f.AmenityIDs, []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", f.AmenityIDs)
	}
}

func TestParsePolicyHookSeesMalformedValues(t *testing.T) {
	q := url.Values{}
	q.Set("min_age", "twenty")
	q.Set("gender", "Nữ")

	var gotKey, gotRaw string
	f := ParseRoomieFilterWith(q, func(key, raw string) {
		gotKey, gotRaw = key, raw
	})

	if gotKey != "min_age" || gotRaw != "twenty" {
		t.Fatalf("policy saw %q=%q", gotKey, gotRaw)
	}
	if f.MinAge != nil {
		t.Fatal("expected min_age unset")
	}
	if f.Gender != "Nữ" {
		t.Fatalf("valid fields must still parse, gender=%q", f.Gender)
	}
}
