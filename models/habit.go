package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Location is an optional geofence attached to a habit or task.
// Radius is in meters.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Radius    float64 `bson:"radius,omitempty" json:"radius,omitempty"`
}

// CompletionEntry records whether the habit was performed on a given day.
// Dates are normalized to midnight UTC; a habit holds at most one entry per
// calendar day.
type CompletionEntry struct {
	Date      time.Time `bson:"date" json:"date"`
	Completed bool      `bson:"completed" json:"completed"`
}

// Habit is a user-owned aggregate: its completion ledger plus derived
// streak counters.
type Habit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Frequency     string             `bson:"frequency" json:"frequency"` // "daily" or "weekly"
	Goal          int                `bson:"goal" json:"goal"`
	Color         string             `bson:"color,omitempty" json:"color,omitempty"`
	Completions   []CompletionEntry  `bson:"completions" json:"completions"`
	CurrentStreak int                `bson:"currentStreak" json:"currentStreak"`
	LongestStreak int                `bson:"longestStreak" json:"longestStreak"`
	Location      *Location          `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
