package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XP awards per completion type
const (
	XPPerHabitCompletion = 10
	XPPerTaskCompletion  = 15
	XPPerLevel           = 100
)

// UserScore is the gamification aggregate, one per user.
type UserScore struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID               primitive.ObjectID `bson:"user" json:"user"`
	TotalXP              int                `bson:"totalXP" json:"totalXP"`
	CurrentLevel         int                `bson:"currentLevel" json:"currentLevel"`
	LongestStreak        int                `bson:"longestStreak" json:"longestStreak"`
	TotalHabitsCompleted int                `bson:"totalHabitsCompleted" json:"totalHabitsCompleted"`
	TotalTasksCompleted  int                `bson:"totalTasksCompleted" json:"totalTasksCompleted"`
	Badges               []string           `bson:"badges" json:"badges"`
	LastUpdated          time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// NewUserScore returns a fresh score record for a user
func NewUserScore(userID primitive.ObjectID) *UserScore {
	return &UserScore{
		UserID:       userID,
		CurrentLevel: 1,
		Badges:       []string{},
		LastUpdated:  time.Now(),
	}
}

// AddXP adds points and recomputes the level. The level is derived as
// floor(totalXP/100)+1 and only ever moves upward. Caller persists.
func (s *UserScore) AddXP(points int) {
	s.TotalXP += points
	newLevel := s.TotalXP/XPPerLevel + 1
	if newLevel > s.CurrentLevel {
		s.CurrentLevel = newLevel
	}
	s.LastUpdated = time.Now()
}

// AddBadge inserts a badge id once, preserving insertion order. Returns
// true when the badge was newly added. Caller persists.
func (s *UserScore) AddBadge(badgeID string) bool {
	for _, b := range s.Badges {
		if b == badgeID {
			return false
		}
	}
	s.Badges = append(s.Badges, badgeID)
	s.LastUpdated = time.Now()
	return true
}

// XPForNextLevel returns the XP remaining until the next level
func (s *UserScore) XPForNextLevel() int {
	return s.CurrentLevel*XPPerLevel - s.TotalXP
}
