package planner

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a professional travel planner for Himalayan Kerala Expeditions (India)."

func buildPlanPrompt(req PlanRequest) string {
	budget := req.Budget
	if strings.TrimSpace(budget) == "" {
		budget = "standard"
	}

	return fmt.Sprintf(`Create a detailed DAY-WISE itinerary in WhatsApp-friendly format.

Destination: %s
Days: %d
Start Date: %s
Travellers: %d
Hotel Class: %s
Budget: %s
Important places to include: %s

Format STRICTLY like:

Day 1 – ...
Day 2 – ...

Then add:
PACKAGE INCLUDES:
PACKAGE EXCLUDES:

Use emojis sparingly.
Make it realistic and sellable.`,
		req.Destination,
		req.Days,
		req.StartDate,
		req.Travellers,
		req.HotelClass,
		budget,
		strings.Join(req.Interests, ", "),
	)
}

func buildChatPrompt(req ChatRequest) string {
	return fmt.Sprintf(`You are modifying an existing travel itinerary.

CURRENT ITINERARY:
%s

USER REQUEST:
%s

Return the FULL UPDATED itinerary in same WhatsApp format.`,
		req.CurrentItinerary,
		req.UserMessage,
	)
}
