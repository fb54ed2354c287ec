package models

import (
	"time"
)

type Room struct {
	ID      int     `json:"id"`
	Slug    string  `json:"slug"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	AreaM2  float64 `json:"area_m2"`
	Owner   struct {
		ID         int     `json:"id"`
		Name       string  `json:"name"`
		Phone      string  `json:"phone"`
		AvatarPath *string `json:"avatar_path,omitempty"`
	} `json:"owner"`
	Images        []RoomImage `json:"images"`
	Description   string      `json:"description"`
	RoomType      string      `json:"room_type"`
	District      string      `json:"district"`
	HasMezzanine  bool        `json:"has_mezzanine"`
	AmenityIDs    []int       `json:"amenity_ids,omitempty"`
	Amenities     []Amenity   `json:"amenities,omitempty"`
	Deposit       float64     `json:"deposit,omitempty"`
	Latitude      float64     `json:"latitude,omitempty"`
	Longitude     float64     `json:"longitude,omitempty"`
	Status        string      `json:"status,omitempty"`
	RejectReason  string      `json:"reject_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
}

type RoomImage struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// RoomListResponse is the backend's shape for a filtered room search. TotalCount is
// the pre-pagination size of the match set as reported by the API, which may exceed
// the number of rooms actually carried in this page.
type RoomListResponse struct {
	Rooms      []Room  `json:"rooms"`
	TotalCount int     `json:"total_count"`
	MinPrice   float64 `json:"min_price,omitempty"`
	MaxPrice   float64 `json:"max_price,omitempty"`
}

// Room moderation statuses as stored by the backend.
const (
	RoomStatusPending  = "pending"
	RoomStatusActive   = "active"
	RoomStatusRejected = "rejected"
)
