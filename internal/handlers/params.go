package handlers

import (
	"net/http"
	"strconv"
)

// pathParam returns a route parameter value. The pat router stores path
// parameters as query values with a leading colon; plain query values and the
// net/http PathValue API are checked as fallbacks so handlers stay
// router-agnostic.
func pathParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	if val := r.URL.Query().Get(name); val != "" {
		return val
	}
	return r.PathValue(name)
}

// intPathParam parses a numeric route parameter; ok is false when it is
// missing or not a number.
func intPathParam(r *http.Request, name string) (int, bool) {
	raw := pathParam(r, name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// queryInt reads an optional integer query parameter, falling back to def
// when absent or malformed (the same lenient policy the filter parser uses).
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
