package filter

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Query parameter keys recognized on both listing surfaces. The wire format
// never encodes "unset" as an explicit empty value: an absent field is an
// absent key.
const (
	keySearch        = "search"
	keyMinPrice      = "min_price"
	keyMaxPrice      = "max_price"
	keyMinAge        = "min_age"
	keyMaxAge        = "max_age"
	keyGender        = "gender"
	keyOccupation    = "occupation"
	keySchool        = "school"
	keyLifestyle     = "lifestyle"
	keyPreferredArea = "preferred_area"
	keyRoomType      = "room_type"
	keyLatitude      = "latitude"
	keyLongitude     = "longitude"
	keyRadius        = "radius"
	keyAmenities     = "amenities"
	keyHasMezzanine  = "has_mezzanine"
)

// Query serializes the filter into URL query parameters. The mapping is
// deterministic: amenity ids are joined ascending and floats use the shortest
// locale-independent decimal form, so equal filters always encode equally.
func (f RoomFilter) Query() url.Values {
	q := url.Values{}
	setString(q, keySearch, f.Search)
	setFloat(q, keyMinPrice, f.MinPrice)
	setFloat(q, keyMaxPrice, f.MaxPrice)
	setString(q, keyRoomType, f.RoomType)
	setString(q, keyPreferredArea, f.PreferredArea)
	if len(f.AmenityIDs) > 0 {
		ids := slices.Clone(f.AmenityIDs)
		slices.Sort(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		q.Set(keyAmenities, strings.Join(parts, ","))
	}
	if f.HasMezzanine != nil {
		q.Set(keyHasMezzanine, strconv.FormatBool(*f.HasMezzanine))
	}
	if f.Location != nil {
		q.Set(keyLatitude, formatFloat(f.Location.Lat))
		q.Set(keyLongitude, formatFloat(f.Location.Lng))
		q.Set(keyRadius, formatFloat(f.Location.RadiusKm))
	}
	return q
}

// Query serializes the filter into URL query parameters.
func (f RoomieFilter) Query() url.Values {
	q := url.Values{}
	setString(q, keySearch, f.Search)
	setFloat(q, keyMinPrice, f.MinPrice)
	setFloat(q, keyMaxPrice, f.MaxPrice)
	setInt(q, keyMinAge, f.MinAge)
	setInt(q, keyMaxAge, f.MaxAge)
	setString(q, keyGender, f.Gender)
	setString(q, keyOccupation, f.Occupation)
	setString(q, keySchool, f.School)
	setString(q, keyLifestyle, f.Lifestyle)
	setString(q, keyPreferredArea, f.PreferredArea)
	return q
}

func setString(q url.Values, key, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		q.Set(key, value)
	}
}

func setFloat(q url.Values, key string, value *float64) {
	if value != nil {
		q.Set(key, formatFloat(*value))
	}
}

func setInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

// formatFloat renders the shortest decimal string that round-trips through
// ParseFloat, with a '.' decimal point and no grouping.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
