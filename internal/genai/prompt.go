package genai

import "fmt"

// TripPrompt carries the fields the generation prompt is built from. Budget
// and Interests stay free-form text; the model reads them as written.
type TripPrompt struct {
	HomeLocation string
	Destination  string
	Days         int
	Budget       string
	TripType     string
	Interests    string
	StartDate    string
	EndDate      string
}

// BuildPrompt renders the instruction block sent to the model.
func BuildPrompt(p TripPrompt) string {
	dateSummary := ""
	if p.StartDate != "" && p.EndDate != "" {
		dateSummary = fmt.Sprintf("Trip Dates: %s to %s\n", p.StartDate, p.EndDate)
	}
	homeSummary := ""
	if p.HomeLocation != "" {
		homeSummary = fmt.Sprintf("Starting From: %s\n", p.HomeLocation)
	}

	return fmt.Sprintf(`You are an expert travel planner.
Create a concise and practical travel plan for a student based on these details:

Home Location: %s
Destination: %s
Duration: %d days
Budget: %s
Type of Trip: %s
Interests: %s
%s%s
Please include:
1. A short trip summary (2-3 lines)
2. A day-by-day itinerary (activities, landmarks, or attractions)
3. A budget breakdown (approximate in INR or USD)
4. A suggested packing list
5. 2-3 local travel tips or safety advice

Keep it friendly and summarized and use emojis to enhance the text.
`, p.HomeLocation, p.Destination, p.Days, p.Budget, p.TripType, p.Interests,
		dateSummary, homeSummary)
}
