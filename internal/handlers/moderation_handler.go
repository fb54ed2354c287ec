package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomNest/internal/services"
)

// maxImageUpload bounds moderation image uploads (10 MiB).
const maxImageUpload = 10 << 20

type ModerationHandler struct {
	Service *services.ModerationService
}

func (h *ModerationHandler) GetPendingRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.PendingRooms(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"rooms": rooms, "total_count": len(rooms)})
}

func (h *ModerationHandler) ApproveRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := h.Service.ApproveRoom(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ModerationHandler) RejectRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := h.Service.RejectRoom(r.Context(), id, req.Reason)
	if errors.Is(err, services.ErrEmptyRejectReason) {
		respondError(w, http.StatusBadRequest, "reject reason is required")
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ModerationHandler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	img, err := h.Service.UploadRoomImage(r.Context(), id, header.Filename, file)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, img)
}

func (h *ModerationHandler) DeleteRoomImage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := intPathParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid room id")
		return
	}
	imageID, ok := intPathParam(r, "image_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := h.Service.DeleteRoomImage(r.Context(), roomID, imageID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
