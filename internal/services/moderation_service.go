package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"roomNest/internal/api"
	"roomNest/internal/models"
)

var ErrEmptyRejectReason = errors.New("services: reject reason is required")

// ModerationService is the admin dashboard's view over pending rooms. All
// verdicts and image changes are proxied to the backend; the gateway adds
// only role enforcement (middleware) and input hygiene.
type ModerationService struct {
	API *api.Client
}

func (s *ModerationService) PendingRooms(ctx context.Context) ([]models.Room, error) {
	return s.API.PendingRooms(ctx)
}

func (s *ModerationService) ApproveRoom(ctx context.Context, id int) error {
	err := s.API.ApproveRoom(ctx, id)
	if api.IsStatus(err, 404) {
		return models.ErrRoomNotFound
	}
	return err
}

func (s *ModerationService) RejectRoom(ctx context.Context, id int, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyRejectReason
	}
	err := s.API.RejectRoom(ctx, id, reason)
	if api.IsStatus(err, 404) {
		return models.ErrRoomNotFound
	}
	return err
}

func (s *ModerationService) UploadRoomImage(ctx context.Context, roomID int, filename string, file io.Reader) (models.RoomImage, error) {
	return s.API.UploadRoomImage(ctx, roomID, filename, file)
}

func (s *ModerationService) DeleteRoomImage(ctx context.Context, roomID, imageID int) error {
	err := s.API.DeleteRoomImage(ctx, roomID, imageID)
	if api.IsStatus(err, 404) {
		return models.ErrRoomNotFound
	}
	return err
}
