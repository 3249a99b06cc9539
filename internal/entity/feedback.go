package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one visitor reaction captured through the feedback form.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Emotion   string    `json:"emotion"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
