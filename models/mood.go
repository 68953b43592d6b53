package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood categories, best to worst
const (
	MoodVeryHappy = "Very Happy"
	MoodHappy     = "Happy"
	MoodNeutral   = "Neutral"
	MoodSad       = "Sad"
	MoodVerySad   = "Very Sad"
)

// ValidMood reports whether s is one of the known mood categories
func ValidMood(s string) bool {
	switch s {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return true
	}
	return false
}

// Mood is one journal entry per user per calendar day, with a same-day
// snapshot of habit/task completion counts.
type Mood struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	Date            time.Time          `bson:"date" json:"date"`
	Mood            string             `bson:"mood" json:"mood"`
	EnergyLevel     int                `bson:"energyLevel" json:"energyLevel"` // 1-10
	Notes           string             `bson:"notes" json:"notes"`
	HabitsCompleted int                `bson:"habitsCompleted" json:"habitsCompleted"`
	TasksCompleted  int                `bson:"tasksCompleted" json:"tasksCompleted"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
