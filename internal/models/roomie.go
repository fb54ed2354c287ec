package models

import (
	"time"
)

// Roomie is a roommate-finder profile. The backend exposes the full list without
// server-side filtering, so every attribute the filter engine matches on lives here.
type Roomie struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Age           int        `json:"age"`
	Gender        string     `json:"gender"`
	Occupation    string     `json:"occupation"`
	School        string     `json:"school,omitempty"`
	Lifestyle     string     `json:"lifestyle,omitempty"`
	PreferredArea string     `json:"preferred_area,omitempty"`
	BudgetMin     float64    `json:"budget_min"`
	BudgetMax     float64    `json:"budget_max"`
	Tags          []string   `json:"tags,omitempty"`
	AvatarPath    *string    `json:"avatar_path,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type RoomieListResponse struct {
	Roomies []Roomie `json:"roomies"`
}
