package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidBirthDate = errors.New("birth_date must be YYYY-MM-DD or RFC3339")

type CreateRebornRequest struct {
	Name        string `json:"name" binding:"required" example:"Maria Clara"`
	BirthDate   string `json:"birth_date" binding:"required" example:"2024-01-15"`
	Weight      int    `json:"weight" binding:"required,min=100,max=10000" example:"2500"`
	Height      int    `json:"height" binding:"required,min=10,max=100" example:"50"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,url" example:"https://example.com/photo.jpg"`
	Description string `json:"description" example:"Um lindo bebê reborn"`
}

// ParseBirthDate accepts a calendar date (UTC midnight) or a full RFC3339 timestamp.
func (r CreateRebornRequest) ParseBirthDate() (time.Time, error) {
	raw := strings.TrimSpace(r.BirthDate)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidBirthDate
}
