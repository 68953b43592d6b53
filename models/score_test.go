package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddXPRecomputesLevel(t *testing.T) {
	score := NewUserScore(primitive.NilObjectID)

	score.AddXP(95)
	if score.CurrentLevel != 1 {
		t.Errorf("Level = %d, want 1 at 95 XP", score.CurrentLevel)
	}

	score.AddXP(10)
	if score.TotalXP != 105 {
		t.Errorf("TotalXP = %d, want 105", score.TotalXP)
	}
	if score.CurrentLevel != 2 { // floor(105/100)+1
		t.Errorf("Level = %d, want 2 at 105 XP", score.CurrentLevel)
	}
}

func TestLevelNeverDrops(t *testing.T) {
	score := NewUserScore(primitive.NilObjectID)
	score.CurrentLevel = 7

	score.AddXP(10)
	if score.CurrentLevel != 7 {
		t.Errorf("Level dropped to %d; derived level below current must not lower it", score.CurrentLevel)
	}
}

func TestXPForNextLevel(t *testing.T) {
	score := NewUserScore(primitive.NilObjectID)
	score.AddXP(130)
	if got := score.XPForNextLevel(); got != 70 { // level 2 -> 200 XP target
		t.Errorf("XPForNextLevel = %d, want 70", got)
	}
}

func TestAddBadgeIdempotent(t *testing.T) {
	score := NewUserScore(primitive.NilObjectID)

	if !score.AddBadge("streak_7") {
		t.Error("First insert should report true")
	}
	if score.AddBadge("streak_7") {
		t.Error("Duplicate insert should report false")
	}
	score.AddBadge("first_habit")

	if len(score.Badges) != 2 {
		t.Fatalf("Expected 2 badges, got %d", len(score.Badges))
	}
	if score.Badges[0] != "streak_7" || score.Badges[1] != "first_habit" {
		t.Errorf("Insertion order not preserved: %v", score.Badges)
	}
}
