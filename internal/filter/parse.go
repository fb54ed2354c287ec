package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Policy is invoked when a recognized key carries a value that fails its typed
// conversion (non-numeric price, enum value outside the vocabulary, and so
// on). The field is always left unset; the policy only decides whether anyone
// hears about it.
type Policy func(key, raw string)

// Lenient drops malformed values silently. This mirrors how the listing pages
// have always behaved: a mangled URL still loads, just with that one filter
// ignored.
var Lenient Policy = func(string, string) {}

// ParseRoomFilter reads a room filter back out of URL query parameters using
// the Lenient policy. Unknown keys are ignored.
func ParseRoomFilter(q url.Values) RoomFilter {
	return ParseRoomFilterWith(q, Lenient)
}

// ParseRoomFilterWith is ParseRoomFilter with an explicit malformed-value
// policy.
func ParseRoomFilterWith(q url.Values, policy Policy) RoomFilter {
	f := RoomFilter{
		Search:        strings.TrimSpace(q.Get(keySearch)),
		MinPrice:      parseFloat(q, keyMinPrice, policy),
		MaxPrice:      parseFloat(q, keyMaxPrice, policy),
		RoomType:      parseEnum(q, keyRoomType, RoomTypes, policy),
		PreferredArea: parseEnum(q, keyPreferredArea, PreferredAreas, policy),
		AmenityIDs:    parseIntList(q, keyAmenities, policy),
		HasMezzanine:  parseBool(q, keyHasMezzanine, policy),
	}

	// A geo filter exists only when both coordinates parse; a lone latitude is
	// treated like any other malformed field.
	lat := parseFloat(q, keyLatitude, policy)
	lng := parseFloat(q, keyLongitude, policy)
	if lat != nil && lng != nil {
		loc := Location{Lat: *lat, Lng: *lng, RadiusKm: defaultRadiusKm}
		if r := parseFloat(q, keyRadius, policy); r != nil && *r > 0 {
			loc.RadiusKm = *r
		}
		f.Location = &loc
	}
	return f
}

// ParseRoomieFilter reads a roomie filter back out of URL query parameters
// using the Lenient policy. Unknown keys are ignored.
func ParseRoomieFilter(q url.Values) RoomieFilter {
	return ParseRoomieFilterWith(q, Lenient)
}

// ParseRoomieFilterWith is ParseRoomieFilter with an explicit malformed-value
// policy.
func ParseRoomieFilterWith(q url.Values, policy Policy) RoomieFilter {
	return RoomieFilter{
		Search:        strings.TrimSpace(q.Get(keySearch)),
		MinPrice:      parseFloat(q, keyMinPrice, policy),
		MaxPrice:      parseFloat(q, keyMaxPrice, policy),
		MinAge:        parseInt(q, keyMinAge, policy),
		MaxAge:        parseInt(q, keyMaxAge, policy),
		Gender:        parseEnum(q, keyGender, Genders, policy),
		Occupation:    parseEnum(q, keyOccupation, Occupations, policy),
		School:        strings.TrimSpace(q.Get(keySchool)),
		Lifestyle:     parseEnum(q, keyLifestyle, Lifestyles, policy),
		PreferredArea: parseEnum(q, keyPreferredArea, PreferredAreas, policy),
	}
}

// defaultRadiusKm applies when coordinates arrive without a usable radius.
const defaultRadiusKm = 5

func parseFloat(q url.Values, key string, policy Policy) *float64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		policy(key, raw)
		return nil
	}
	return &v
}

func parseInt(q url.Values, key string, policy Policy) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		policy(key, raw)
		return nil
	}
	return &v
}

func parseBool(q url.Values, key string, policy Policy) *bool {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		policy(key, raw)
		return nil
	}
	return &v
}

func parseEnum(q url.Values, key string, vocab []string, policy Policy) string {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return ""
	}
	if !inVocabulary(vocab, raw) {
		policy(key, raw)
		return ""
	}
	return raw
}

// parseIntList reads a comma-joined id list. Ids that fail to parse are
// dropped individually rather than poisoning the whole list.
func parseIntList(q url.Values, key string, policy Policy) []int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			policy(key, part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
