package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/dto"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/entity"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/repository"
)

// defaultEmotion is used when a submission leaves the emotion out.
const defaultEmotion = "😊"

var emotions = map[string]bool{
	"😍": true,
	"😊": true,
	"😐": true,
	"😕": true,
	"😡": true,
}

// recentFeedbackLimit caps how many entries the public summary returns.
const recentFeedbackLimit = 10

var (
	ErrEmptyMessage   = errors.New("feedback message must not be empty")
	ErrInvalidEmotion = errors.New("unknown feedback emotion")
)

// FeedbackService stores visitor reactions and reports on them.
type FeedbackService struct {
	log repository.FeedbackLog
	now func() time.Time
}

// NewFeedbackService wires the feedback store. A nil now falls back to
// wall-clock time.
func NewFeedbackService(log repository.FeedbackLog, now func() time.Time) *FeedbackService {
	if now == nil {
		now = time.Now
	}
	return &FeedbackService{log: log, now: now}
}

// Submit validates and appends one reaction.
func (s *FeedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackEntry, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	emotion := strings.TrimSpace(req.Emotion)
	if emotion == "" {
		emotion = defaultEmotion
	}
	if !emotions[emotion] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmotion, emotion)
	}

	fb := entity.Feedback{
		ID:        uuid.New(),
		Emotion:   emotion,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.log.Append(ctx, fb); err != nil {
		return nil, err
	}

	entry := toFeedbackEntry(fb)
	return &entry, nil
}

// Summary returns the total count plus the latest entries, newest first.
func (s *FeedbackService) Summary(ctx context.Context) (*dto.FeedbackSummary, error) {
	count, err := s.log.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.log.Recent(ctx, recentFeedbackLimit)
	if err != nil {
		return nil, err
	}

	summary := &dto.FeedbackSummary{
		Count:  count,
		Recent: make([]dto.FeedbackEntry, 0, len(recent)),
	}
	for _, fb := range recent {
		summary.Recent = append(summary.Recent, toFeedbackEntry(fb))
	}
	return summary, nil
}

// List returns every stored entry, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]dto.FeedbackEntry, error) {
	all, err := s.log.Recent(ctx, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.FeedbackEntry, 0, len(all))
	for _, fb := range all {
		entries = append(entries, toFeedbackEntry(fb))
	}
	return entries, nil
}

// ExportCSV renders every stored entry as a CSV document, newest first.
func (s *FeedbackService) ExportCSV(ctx context.Context) ([]byte, error) {
	all, err := s.log.Recent(ctx, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "emotion", "message", "created_at"}); err != nil {
		return nil, err
	}
	for _, fb := range all {
		created := ""
		if !fb.CreatedAt.IsZero() {
			created = fb.CreatedAt.Format(time.RFC3339)
		}
		entry := toFeedbackEntry(fb)
		if err := w.Write([]string{entry.ID, fb.Emotion, fb.Message, created}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toFeedbackEntry maps a stored reaction to its client shape. Entries read
// from legacy text logs have no ID, which maps to an empty string.
func toFeedbackEntry(fb entity.Feedback) dto.FeedbackEntry {
	id := ""
	if fb.ID != uuid.Nil {
		id = fb.ID.String()
	}
	return dto.FeedbackEntry{
		ID:        id,
		Emotion:   fb.Emotion,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt,
	}
}
