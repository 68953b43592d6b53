package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaborator roles
const (
	RoleViewer       = "viewer"
	RoleCollaborator = "collaborator"
	RoleOwner        = "owner"
)

type Collaborator struct {
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	Role       string             `bson:"role" json:"role"`
	InvitedAt  time.Time          `bson:"invitedAt" json:"invitedAt"`
	AcceptedAt *time.Time         `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
}

// SharedHabit records who a habit is shared with. It is keyed by habit id
// and lives independently of the habit itself.
type SharedHabit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HabitID       primitive.ObjectID `bson:"habit" json:"habit"`
	OwnerID       primitive.ObjectID `bson:"owner" json:"owner"`
	Collaborators []Collaborator     `bson:"collaborators" json:"collaborators"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// SharedTask is the task counterpart of SharedHabit
type SharedTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TaskID        primitive.ObjectID `bson:"task" json:"task"`
	OwnerID       primitive.ObjectID `bson:"owner" json:"owner"`
	Collaborators []Collaborator     `bson:"collaborators" json:"collaborators"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
