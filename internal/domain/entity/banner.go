package entity

import "time"

type Banner struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Link        string     `json:"link"`
	ButtonText  string     `json:"buttonText"`
	IsActive    bool       `json:"isActive"`
	Order       int        `json:"order"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (b Banner) GetID() string { return b.ID }

// Live reports whether the banner is active and inside its display window at t.
func (b Banner) Live(t time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && t.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && t.After(*b.EndDate) {
		return false
	}
	return true
}

const DefaultButtonText = "Shop Now"

type BannerInput struct {
	Title       string `validate:"required"`
	Description string
	Link        string `validate:"omitempty,url|startswith=/"`
	ButtonText  string
	IsActive    *bool
	Order       *int `validate:"omitempty,min=0"`
	StartDate   *time.Time
	EndDate     *time.Time
	// Image is sent as the "image" multipart part when present.
	Image *Upload
}

// BannerOrder assigns a display position to one banner.
type BannerOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
