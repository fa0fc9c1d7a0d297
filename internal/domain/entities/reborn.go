package entities

import (
	"math"
	"time"
)

const millisPerDay = 86_400_000

// Reborn is the collectible doll record whose attributes fill generated documents.
//
// Weight is stored in grams and Height in centimeters. Range checks happen at the
// HTTP boundary, the entity does not re-validate.
type Reborn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	BirthDate   time.Time `json:"birth_date"`
	Weight      int       `json:"weight"`
	Height      int       `json:"height"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r Reborn) BelongsToUser(userID string) bool {
	return r.UserID != "" && r.UserID == userID
}

// AgeInDays is ceil(|now - birthDate| / 1 day), measured in milliseconds.
func (r Reborn) AgeInDays(now time.Time) int {
	diff := now.Sub(r.BirthDate).Milliseconds()
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / millisPerDay))
}
