package domain

import (
	"time"

	"github.com/google/uuid"
)

// Blog is the catalog entry. UserID points at the account that created it
// and never changes once set; it is nil only for entries created before
// ownership was tracked.
type Blog struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	URL       string     `json:"url"`
	Likes     int        `json:"likes"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
