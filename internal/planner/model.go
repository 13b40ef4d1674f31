package planner

// PlanRequest asks for a fresh day-wise itinerary.
type PlanRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	StartDate   string   `json:"startDate"`
	Travellers  int      `json:"travellers"`
	HotelClass  string   `json:"hotelClass"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
}

// PlanResponse carries the generated itinerary text.
type PlanResponse struct {
	ItineraryText string `json:"itinerary_text"`
}

// ChatRequest asks for an edit of an existing itinerary. The client sends
// the full current text back; the server keeps no conversation state.
type ChatRequest struct {
	CurrentItinerary string `json:"current_itinerary"`
	UserMessage      string `json:"user_message"`
}

// ChatResponse carries the full updated itinerary.
type ChatResponse struct {
	UpdatedItinerary string `json:"updated_itinerary"`
}
