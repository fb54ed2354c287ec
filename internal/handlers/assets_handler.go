package handlers

import (
	"net/http"
	"regexp"

	"roomNest/internal/assets"
)

var assetCategoryRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

type AssetsHandler struct {
	Prober *assets.Prober
}

// DiscoverImages probes the asset store for a category's numbered image
// sequence and returns the keys that exist. The gallery widget renders
// whatever comes back, in order.
func (h *AssetsHandler) DiscoverImages(w http.ResponseWriter, r *http.Request) {
	category := pathParam(r, "category")
	if !assetCategoryRe.MatchString(category) {
		respondError(w, http.StatusBadRequest, "invalid asset category")
		return
	}
	ext := r.URL.Query().Get("ext")
	if ext == "" {
		ext = "jpg"
	}

	keys, err := h.Prober.Discover(r.Context(), category, ext)
	if err != nil {
		// Partial results are still useful; serve what was confirmed.
		if len(keys) == 0 {
			respondError(w, http.StatusBadGateway, "asset store unavailable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"images": keys, "total_count": len(keys)})
}
