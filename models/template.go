package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HabitPreset is one habit definition inside a template
type HabitPreset struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Frequency   string `bson:"frequency" json:"frequency"`
	Goal        int    `bson:"goal" json:"goal"`
	Color       string `bson:"color,omitempty" json:"color,omitempty"`
}

// HabitTemplate is a named bundle of habit presets a user can apply in one go
type HabitTemplate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"` // Health, Fitness, Productivity, ...
	Habits      []HabitPreset      `bson:"habits" json:"habits"`
	IsDefault   bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
