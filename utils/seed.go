package utils

import (
	"context"
	"log"
	"time"

	"momentum/db"
	"momentum/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedDefaultTemplates inserts the built-in habit templates if no default
// templates exist yet.
func SeedDefaultTemplates() {
	collection := db.GetCollection("habit_templates")
	count, _ := collection.CountDocuments(context.Background(), bson.M{"isDefault": true})
	if count > 0 {
		return
	}

	now := time.Now()
	templates := []models.HabitTemplate{
		{
			Name:        "Morning Routine",
			Description: "Start your day right with these morning habits",
			Category:    "Health",
			Habits: []models.HabitPreset{
				{Name: "Wake up early", Description: "Wake up at a consistent time", Frequency: models.FrequencyDaily, Goal: 1, Color: "#3B82F6"},
				{Name: "Drink water", Description: "Drink a glass of water first thing", Frequency: models.FrequencyDaily, Goal: 1, Color: "#10B981"},
				{Name: "Exercise", Description: "Morning workout or stretch", Frequency: models.FrequencyDaily, Goal: 1, Color: "#F59E0B"},
				{Name: "Meditate", Description: "10 minutes of meditation", Frequency: models.FrequencyDaily, Goal: 1, Color: "#8B5CF6"},
			},
			IsDefault: true,
			CreatedAt: now,
		},
		{
			Name:        "Fitness Plan",
			Description: "Build a consistent fitness routine",
			Category:    "Fitness",
			Habits: []models.HabitPreset{
				{Name: "Cardio workout", Description: "30 minutes of cardio", Frequency: models.FrequencyDaily, Goal: 1, Color: "#EF4444"},
				{Name: "Strength training", Description: "Strength training session", Frequency: models.FrequencyWeekly, Goal: 3, Color: "#F59E0B"},
				{Name: "Stretch", Description: "Daily stretching routine", Frequency: models.FrequencyDaily, Goal: 1, Color: "#10B981"},
			},
			IsDefault: true,
			CreatedAt: now,
		},
		{
			Name:        "Productivity Boost",
			Description: "Habits to improve productivity",
			Category:    "Productivity",
			Habits: []models.HabitPreset{
				{Name: "Plan your day", Description: "Plan tasks for the day", Frequency: models.FrequencyDaily, Goal: 1, Color: "#3B82F6"},
				{Name: "Deep work session", Description: "Focus on important tasks", Frequency: models.FrequencyDaily, Goal: 2, Color: "#8B5CF6"},
				{Name: "Review progress", Description: "Review what you accomplished", Frequency: models.FrequencyDaily, Goal: 1, Color: "#10B981"},
			},
			IsDefault: true,
			CreatedAt: now,
		},
	}

	documents := make([]interface{}, len(templates))
	for i, tpl := range templates {
		documents[i] = tpl
	}

	if _, err := collection.InsertMany(context.Background(), documents); err != nil {
		log.Printf("Error seeding habit templates: %v", err)
	}
}
