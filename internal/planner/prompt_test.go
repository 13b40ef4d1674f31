package planner

import (
	"strings"
	"testing"
)

func TestBuildPlanPrompt(t *testing.T) {
	req := PlanRequest{
		Destination: "Manali",
		Days:        5,
		StartDate:   "2025-06-01",
		Travellers:  2,
		HotelClass:  "4 star",
		Interests:   []string{"Solang Valley", "Rohtang Pass"},
	}

	prompt := buildPlanPrompt(req)

	for _, want := range []string{
		"Destination: Manali",
		"Days: 5",
		"Start Date: 2025-06-01",
		"Travellers: 2",
		"Hotel Class: 4 star",
		"Budget: standard",
		"Solang Valley, Rohtang Pass",
		"PACKAGE INCLUDES:",
		"PACKAGE EXCLUDES:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPlanPromptKeepsExplicitBudget(t *testing.T) {
	prompt := buildPlanPrompt(PlanRequest{Destination: "Munnar", Days: 3, Budget: "luxury"})
	if !strings.Contains(prompt, "Budget: luxury") {
		t.Errorf("expected explicit budget, got:\n%s", prompt)
	}
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := buildChatPrompt(ChatRequest{
		CurrentItinerary: "Day 1 – Arrival",
		UserMessage:      "add a houseboat day",
	})

	if !strings.Contains(prompt, "Day 1 – Arrival") {
		t.Error("prompt missing current itinerary")
	}
	if !strings.Contains(prompt, "add a houseboat day") {
		t.Error("prompt missing user request")
	}
	if !strings.Contains(prompt, "FULL UPDATED itinerary") {
		t.Error("prompt missing full-rewrite instruction")
	}
}
