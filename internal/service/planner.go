package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/dto"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/genai"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/planner"
)

// Generation sources reported in plan responses.
const (
	SourceGemini  = "gemini"
	SourceOffline = "offline"
)

const dateLayout = "2006-01-02"

var tripTypes = map[string]bool{
	"Adventure":  true,
	"Family":     true,
	"Solo":       true,
	"Honeymoon":  true,
	"Business":   true,
	"Cultural":   true,
	"Relaxation": true,
}

// Validation failures the handlers map to client errors.
var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrHomeRequired        = errors.New("home location is required")
	ErrBudgetRequired      = errors.New("budget is required")
	ErrInvalidTripType     = errors.New("unknown trip type")
	ErrInvalidDates        = errors.New("trip end date must be the same or after the start date")
	ErrInvalidDays         = errors.New("days must be between 1 and 365")
)

// RemoteGenerator is the hosted model the planner tries before falling
// back to the offline generator.
type RemoteGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Configured() bool
	Model() string
}

// PlannerService validates trip requests and produces plans.
type PlannerService struct {
	remote RemoteGenerator
	seed   func() int64
}

// NewPlannerService wires the planner. remote may be nil for offline-only
// setups; a nil seed falls back to wall-clock seeding.
func NewPlannerService(remote RemoteGenerator, seed func() int64) *PlannerService {
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &PlannerService{remote: remote, seed: seed}
}

// TripDetails is the validated, normalized form of a PlanRequest.
type TripDetails struct {
	Trip      planner.Trip
	Budget    planner.Budget
	RawBudget string
	Interests string
	StartDate string
	EndDate   string
}

// ValidateTrip checks a plan request and resolves the trip duration. Days
// may come from the payload directly or be derived from the date range
// (inclusive); with neither present the duration defaults to 5 days.
func ValidateTrip(req dto.PlanRequest) (TripDetails, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return TripDetails{}, ErrDestinationRequired
	}
	home := strings.TrimSpace(req.HomeLocation)
	if home == "" {
		return TripDetails{}, ErrHomeRequired
	}

	derived := 0
	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)
	if start != "" && end != "" {
		startDate, err := time.Parse(dateLayout, start)
		if err != nil {
			return TripDetails{}, fmt.Errorf("%w: bad start_date %q", ErrInvalidDates, start)
		}
		endDate, err := time.Parse(dateLayout, end)
		if err != nil {
			return TripDetails{}, fmt.Errorf("%w: bad end_date %q", ErrInvalidDates, end)
		}
		if endDate.Before(startDate) {
			return TripDetails{}, ErrInvalidDates
		}
		derived = int(endDate.Sub(startDate).Hours()/24) + 1
	}

	budget := strings.TrimSpace(req.Budget)
	if budget == "" {
		return TripDetails{}, ErrBudgetRequired
	}

	if !tripTypes[req.TripType] {
		return TripDetails{}, fmt.Errorf("%w: %q", ErrInvalidTripType, req.TripType)
	}

	days := req.Days
	if days == 0 {
		days = derived
	}
	if days == 0 {
		days = 5
	}
	if days < 1 || days > 365 {
		return TripDetails{}, ErrInvalidDays
	}

	return TripDetails{
		Trip: planner.Trip{
			HomeLocation: home,
			Destination:  destination,
			Days:         days,
			TripType:     req.TripType,
			Interests:    planner.SplitInterests(req.Interests),
		},
		Budget:    planner.ParseBudget(budget),
		RawBudget: budget,
		Interests: strings.TrimSpace(req.Interests),
		StartDate: start,
		EndDate:   end,
	}, nil
}

// GeneratePlan tries the hosted model first and falls back to the offline
// generator on any failure. The response records which path produced the
// plan.
func (s *PlannerService) GeneratePlan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	details, err := ValidateTrip(req)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlanResponse{
		Days:     details.Trip.Days,
		FileName: PlanFileName(details.Trip.Destination),
	}

	if s.remote != nil && s.remote.Configured() {
		prompt := genai.BuildPrompt(genai.TripPrompt{
			HomeLocation: details.Trip.HomeLocation,
			Destination:  details.Trip.Destination,
			Days:         details.Trip.Days,
			Budget:       details.RawBudget,
			TripType:     details.Trip.TripType,
			Interests:    details.Interests,
			StartDate:    details.StartDate,
			EndDate:      details.EndDate,
		})
		plan, err := s.remote.GenerateContent(ctx, prompt)
		if err == nil {
			resp.Plan = plan
			resp.Source = SourceGemini
			resp.Model = s.remote.Model()
			return resp, nil
		}
		log.Printf("remote plan generation failed, using offline fallback: %v", err)
	}

	resp.Plan = planner.NewGenerator(s.seed()).Build(details.Trip, details.Budget)
	resp.Source = SourceOffline
	return resp, nil
}
