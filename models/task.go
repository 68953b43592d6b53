package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Task is a one-off item with no streak concept. CompletedAt is set when
// the status transitions to Completed and cleared when reverted.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Priority    string             `bson:"priority" json:"priority"` // Low, Medium, High
	Status      string             `bson:"status" json:"status"`     // Pending, Completed
	Category    string             `bson:"category" json:"category"`
	Location    *Location          `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
