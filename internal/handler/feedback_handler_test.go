package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/entity"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/repository"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/service"
)

type failingFeedbackLog struct{}

func (failingFeedbackLog) Append(ctx context.Context, fb entity.Feedback) error {
	return errors.New("disk full")
}

func (failingFeedbackLog) Recent(ctx context.Context, limit int) ([]entity.Feedback, error) {
	return nil, errors.New("disk full")
}

func (failingFeedbackLog) Count(ctx context.Context) (int, error) {
	return 0, errors.New("disk full")
}

func newFeedbackHandler(t *testing.T) *FeedbackHandler {
	t.Helper()
	log := repository.NewFileFeedbackLog(filepath.Join(t.TempDir(), "feedbacks.txt"))
	return NewFeedbackHandler(service.NewFeedbackService(log, nil))
}

func submitFeedback(t *testing.T, e *echo.Echo, handler *FeedbackHandler, emotion, message string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"emotion": emotion, "message": message})
	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestFeedbackHandler_Submit(t *testing.T) {
	e := echo.New()

	t.Run("invalid payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewBufferString("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newFeedbackHandler(t).Submit(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		rec := submitFeedback(t, e, newFeedbackHandler(t), "😊", "   ")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown emotion", func(t *testing.T) {
		rec := submitFeedback(t, e, newFeedbackHandler(t), "🤖", "hello")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success with default emotion", func(t *testing.T) {
		rec := submitFeedback(t, e, newFeedbackHandler(t), "", "loved the goa plan")
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "😊") {
			t.Fatalf("expected default emotion in response, got %s", rec.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		handler := NewFeedbackHandler(service.NewFeedbackService(failingFeedbackLog{}, nil))
		rec := submitFeedback(t, e, handler, "😊", "hello")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestFeedbackHandler_Summary(t *testing.T) {
	e := echo.New()
	handler := newFeedbackHandler(t)

	submitFeedback(t, e, handler, "😍", "first")
	submitFeedback(t, e, handler, "😡", "second")

	req := httptest.NewRequest(http.MethodGet, "/feedback/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Summary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data struct {
			Count  int `json:"count"`
			Recent []struct {
				Emotion string `json:"emotion"`
				Message string `json:"message"`
			} `json:"recent"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if payload.Data.Count != 2 {
		t.Fatalf("expected count 2, got %d", payload.Data.Count)
	}
	if len(payload.Data.Recent) != 2 || payload.Data.Recent[0].Message != "second" {
		t.Fatalf("expected newest first, got %+v", payload.Data.Recent)
	}
}

func TestFeedbackHandler_AdminList(t *testing.T) {
	e := echo.New()
	handler := newFeedbackHandler(t)
	submitFeedback(t, e, handler, "😐", "okay experience")

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "okay experience") {
		t.Fatalf("expected entry in listing, got %s", rec.Body.String())
	}
}

func TestFeedbackHandler_ExportCSV(t *testing.T) {
	e := echo.New()
	handler := newFeedbackHandler(t)
	submitFeedback(t, e, handler, "😕", "plan skipped my dates")

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ExportCSV(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "text/csv" {
		t.Fatalf("unexpected content type %q", got)
	}
	if rec.Header().Get(echo.HeaderContentDisposition) != `attachment; filename="feedbacks.csv"` {
		t.Fatalf("unexpected disposition %q", rec.Header().Get(echo.HeaderContentDisposition))
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(records))
	}
	if records[1][1] != "😕" || records[1][2] != "plan skipped my dates" {
		t.Fatalf("unexpected row %v", records[1])
	}
}
