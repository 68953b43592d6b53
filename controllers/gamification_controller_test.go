package controllers

import (
	"testing"

	"momentum/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyManualAwardAdvancesCounters(t *testing.T) {
	score := models.NewUserScore(primitive.NilObjectID)

	points, ok := applyManualAward(score, "habit")
	if !ok || points != models.XPPerHabitCompletion {
		t.Fatalf("Expected %d habit points, got %d (ok=%v)", models.XPPerHabitCompletion, points, ok)
	}
	if score.TotalHabitsCompleted != 1 {
		t.Errorf("Expected totalHabitsCompleted 1, got %d", score.TotalHabitsCompleted)
	}

	points, ok = applyManualAward(score, "task")
	if !ok || points != models.XPPerTaskCompletion {
		t.Fatalf("Expected %d task points, got %d (ok=%v)", models.XPPerTaskCompletion, points, ok)
	}
	if score.TotalTasksCompleted != 1 {
		t.Errorf("Expected totalTasksCompleted 1, got %d", score.TotalTasksCompleted)
	}
	if score.TotalXP != models.XPPerHabitCompletion+models.XPPerTaskCompletion {
		t.Errorf("Expected totalXP %d, got %d", models.XPPerHabitCompletion+models.XPPerTaskCompletion, score.TotalXP)
	}
}

func TestApplyManualAwardRejectsUnknownType(t *testing.T) {
	score := models.NewUserScore(primitive.NilObjectID)

	if _, ok := applyManualAward(score, "chore"); ok {
		t.Error("Expected unknown award type to be rejected")
	}
	if score.TotalXP != 0 {
		t.Errorf("Expected no XP for rejected award, got %d", score.TotalXP)
	}
}
