package services

import (
	"testing"

	"momentum/models"
)

func TestMoodInsightsEmpty(t *testing.T) {
	insights := ComputeMoodInsights(nil)

	if insights.TotalEntries != 0 || insights.AverageEnergy != 0 {
		t.Errorf("Empty history should yield zeros, got %+v", insights)
	}
	if insights.Message == "" {
		t.Error("Empty history should carry an explanatory message")
	}
	if insights.MoodDistribution == nil || insights.ProductivityCorrelation == nil {
		t.Error("Maps and slices should be non-nil for JSON serialization")
	}
}

func TestMoodInsights(t *testing.T) {
	moods := []models.Mood{
		{Mood: models.MoodHappy, EnergyLevel: 8, HabitsCompleted: 3, TasksCompleted: 2},
		{Mood: models.MoodHappy, EnergyLevel: 7, HabitsCompleted: 1},
		{Mood: models.MoodSad, EnergyLevel: 3},
	}

	insights := ComputeMoodInsights(moods)

	if insights.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", insights.TotalEntries)
	}
	if insights.AverageEnergy != 6.0 { // (8+7+3)/3
		t.Errorf("AverageEnergy = %v, want 6.0", insights.AverageEnergy)
	}
	if insights.MoodDistribution[models.MoodHappy] != 2 || insights.MoodDistribution[models.MoodSad] != 1 {
		t.Errorf("MoodDistribution wrong: %v", insights.MoodDistribution)
	}
	if len(insights.ProductivityCorrelation) != 3 {
		t.Fatalf("Expected one correlation point per entry, got %d", len(insights.ProductivityCorrelation))
	}
	if insights.ProductivityCorrelation[0].Productivity != 5 {
		t.Errorf("Productivity = %d, want habits+tasks = 5", insights.ProductivityCorrelation[0].Productivity)
	}
	if insights.Message != "" {
		t.Errorf("Non-empty history should not carry a message, got %q", insights.Message)
	}
}
