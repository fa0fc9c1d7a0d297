package response

import (
	"time"

	"reborn_api/internal/domain/entities"
)

// RebornResponse omits the owner id and update timestamp.
type RebornResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BirthDate   time.Time `json:"birth_date"`
	Weight      int       `json:"weight"`
	Height      int       `json:"height"`
	PhotoURL    *string   `json:"photo_url"`
	Description *string   `json:"description"`
	AgeInDays   int       `json:"age_in_days"`
	CreatedAt   time.Time `json:"created_at"`
}

type RebornsListResponse struct {
	Reborns []RebornResponse `json:"reborns"`
	Total   int              `json:"total"`
}

func FromReborn(r entities.Reborn, now time.Time) RebornResponse {
	return RebornResponse{
		ID:          r.ID,
		Name:        r.Name,
		BirthDate:   r.BirthDate,
		Weight:      r.Weight,
		Height:      r.Height,
		PhotoURL:    nullable(r.PhotoURL),
		Description: nullable(r.Description),
		AgeInDays:   r.AgeInDays(now),
		CreatedAt:   r.CreatedAt,
	}
}

func FromReborns(rs []entities.Reborn, now time.Time) RebornsListResponse {
	out := make([]RebornResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReborn(r, now))
	}
	return RebornsListResponse{Reborns: out, Total: len(out)}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
