package dto

// PlanRequest is the payload accepted by the plan endpoints. Days may be
// given directly or derived from the date range; dates use 2006-01-02.
type PlanRequest struct {
	HomeLocation string `json:"home_location"`
	Destination  string `json:"destination"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Days         int    `json:"days,omitempty"`
	Budget       string `json:"budget"`
	TripType     string `json:"trip_type"`
	Interests    string `json:"interests,omitempty"`
}

// PlanResponse carries a generated plan back to the client.
type PlanResponse struct {
	Plan     string `json:"plan"`
	Source   string `json:"source"`
	Model    string `json:"model,omitempty"`
	Days     int    `json:"days"`
	FileName string `json:"file_name"`
}
