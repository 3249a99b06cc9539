package repository

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/entity"
)

const feedbackSeparator = "\n---\n"

// FileFeedbackLog keeps feedback in a flat text file: one "emoji message"
// entry per record, records separated by "---" lines. This is the
// feedbacks.txt format the planner has always written, so existing files
// keep working. Entries read back from disk carry no id or timestamp.
type FileFeedbackLog struct {
	mu   sync.Mutex
	path string
}

// NewFileFeedbackLog builds a file backed log at the given path. The file
// is created on first append.
func NewFileFeedbackLog(path string) *FileFeedbackLog {
	return &FileFeedbackLog{path: path}
}

var _ FeedbackLog = (*FileFeedbackLog)(nil)

// Append writes one entry to the end of the file.
func (l *FileFeedbackLog) Append(_ context.Context, fb entity.Feedback) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open feedback file: %w", err)
	}
	defer file.Close()

	entry := strings.TrimSpace(fb.Emotion + " " + fb.Message)
	if _, err := file.WriteString(entry + feedbackSeparator); err != nil {
		return fmt.Errorf("append feedback: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first. A limit <= 0 returns
// every entry.
func (l *FileFeedbackLog) Recent(_ context.Context, limit int) ([]entity.Feedback, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	// on disk the newest entry sits last
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Count reports the total number of stored entries.
func (l *FileFeedbackLog) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (l *FileFeedbackLog) readAll() ([]entity.Feedback, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read feedback file: %w", err)
	}

	var entries []entity.Feedback
	for _, chunk := range strings.Split(string(data), feedbackSeparator) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		emotion, message, found := strings.Cut(chunk, " ")
		if !found {
			emotion, message = "", chunk
		}
		entries = append(entries, entity.Feedback{Emotion: emotion, Message: message})
	}
	return entries, nil
}
