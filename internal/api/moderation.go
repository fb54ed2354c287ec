package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"roomNest/internal/models"
)

// PendingRooms lists rooms awaiting moderation.
func (c *Client) PendingRooms(ctx context.Context) ([]models.Room, error) {
	var resp struct {
		Rooms []models.Room `json:"rooms"`
	}
	if err := c.Get(ctx, "/admin/rooms/pending", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

// ApproveRoom flips a pending room to active.
func (c *Client) ApproveRoom(ctx context.Context, id int) error {
	return c.Post(ctx, fmt.Sprintf("/admin/rooms/%d/approve", id), nil, true, nil)
}

// RejectRoom rejects a pending room with a reason shown to the owner.
func (c *Client) RejectRoom(ctx context.Context, id int, reason string) error {
	body := map[string]string{"reason": reason}
	return c.Post(ctx, fmt.Sprintf("/admin/rooms/%d/reject", id), body, true, nil)
}

// UploadRoomImage forwards an image file to the backend as multipart form
// data. This is the one call that bypasses the JSON body path.
func (c *Client) UploadRoomImage(ctx context.Context, roomID int, filename string, file io.Reader) (models.RoomImage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return models.RoomImage{}, &Error{Message: fmt.Sprintf("build multipart body: %v", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.RoomImage{}, &Error{Message: fmt.Sprintf("read image: %v", err)}
	}
	if err := writer.Close(); err != nil {
		return models.RoomImage{}, &Error{Message: fmt.Sprintf("finish multipart body: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + fmt.Sprintf("/admin/rooms/%d/images", roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return models.RoomImage{}, &Error{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return models.RoomImage{}, &Error{Message: fmt.Sprintf("read credentials: %v", err)}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RoomImage{}, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.RoomImage{}, &Error{Message: fmt.Sprintf("read response: %v", err), Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.RoomImage{}, shapeError(resp.StatusCode, data)
	}

	var img models.RoomImage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &img); err != nil {
			return models.RoomImage{}, &Error{Message: fmt.Sprintf("decode response: %v", err), Status: resp.StatusCode}
		}
	}
	return img, nil
}

// DeleteRoomImage removes one image from a room.
func (c *Client) DeleteRoomImage(ctx context.Context, roomID, imageID int) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/rooms/%d/images/%d", roomID, imageID), RequestOptions{IncludeAuth: true}, nil)
	return err
}
