package dto

import "time"

// FeedbackRequest captures a visitor reaction. Emotion defaults to 😊 when
// left out.
type FeedbackRequest struct {
	Emotion string `json:"emotion,omitempty"`
	Message string `json:"message"`
}

// FeedbackEntry represents one stored reaction returned to clients.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Emotion   string    `json:"emotion"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSummary aggregates the most recent reactions.
type FeedbackSummary struct {
	Count  int             `json:"count"`
	Recent []FeedbackEntry `json:"recent"`
}
