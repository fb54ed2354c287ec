// Package filter holds the search criteria model shared by the two listing
// surfaces (rooms and roomies), its URL query serialization, and the in-memory
// predicate/sort/pagination engine used where the backend does not filter.
package filter

// Location is an explicit geo constraint picked on the map. Absence of the
// struct means "no geo filter"; the address label shown in the UI is derived
// by reverse geocoding and never travels in the query string.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}

// RoomFilter is the criteria set for the room-listing surface. Pointer and
// empty values mean "unset": an unset field emits no query parameter and
// constrains nothing.
type RoomFilter struct {
	Search        string    `json:"search,omitempty"`
	MinPrice      *float64  `json:"min_price,omitempty"`
	MaxPrice      *float64  `json:"max_price,omitempty"`
	RoomType      string    `json:"room_type,omitempty"`
	PreferredArea string    `json:"preferred_area,omitempty"`
	AmenityIDs    []int     `json:"amenities,omitempty"`
	HasMezzanine  *bool     `json:"has_mezzanine,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// RoomieFilter is the criteria set for the roommate-finder surface. The price
// pair filters against a roomie's budget range by interval overlap, not by
// point containment.
type RoomieFilter struct {
	Search        string   `json:"search,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinAge        *int     `json:"min_age,omitempty"`
	MaxAge        *int     `json:"max_age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Occupation    string   `json:"occupation,omitempty"`
	School        string   `json:"school,omitempty"`
	Lifestyle     string   `json:"lifestyle,omitempty"`
	PreferredArea string   `json:"preferred_area,omitempty"`
}

// Closed vocabularies for the enum facets. Parse rejects values outside these
// lists the same way it rejects a non-numeric price: the field stays unset.
var (
	Genders = []string{"Nam", "Nữ", "Khác"}

	Occupations = []string{"Sinh viên", "Người đi làm", "Khác"}

	Lifestyles = []string{"Sạch sẽ", "Yên tĩnh", "Hòa đồng", "Về muộn"}

	RoomTypes = []string{"Phòng trọ", "Nguyên căn", "Chung cư mini", "Căn hộ"}

	PreferredAreas = []string{
		"Quận 1", "Quận 3", "Quận 5", "Quận 7", "Quận 10",
		"Bình Thạnh", "Gò Vấp", "Tân Bình", "Phú Nhuận", "Thủ Đức",
	}
)

func inVocabulary(vocab []string, value string) bool {
	for _, v := range vocab {
		if v == value {
			return true
		}
	}
	return false
}

// IsZero reports whether no field of the filter is set.
func (f RoomFilter) IsZero() bool {
	return f.Search == "" &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.RoomType == "" && f.PreferredArea == "" &&
		len(f.AmenityIDs) == 0 &&
		f.HasMezzanine == nil &&
		f.Location == nil
}

// IsZero reports whether no field of the filter is set.
func (f RoomieFilter) IsZero() bool {
	return f.Search == "" &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinAge == nil && f.MaxAge == nil &&
		f.Gender == "" && f.Occupation == "" &&
		f.School == "" && f.Lifestyle == "" &&
		f.PreferredArea == ""
}
