package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	BlogIDs      []uuid.UUID `json:"blogs"`
	CreatedAt    time.Time   `json:"created_at"`
}
