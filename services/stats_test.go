package services

import (
	"testing"
	"time"

	"momentum/models"
)

func TestComputeHabitStatsEmpty(t *testing.T) {
	stats := ComputeHabitStats(nil)
	if stats.TotalHabits != 0 || stats.TotalCompletions != 0 || stats.AverageStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("Empty collection should yield zero stats, got %+v", stats)
	}
}

func TestComputeHabitStats(t *testing.T) {
	now := time.Now()
	habits := []models.Habit{
		{
			CurrentStreak: 3,
			LongestStreak: 9,
			Completions: []models.CompletionEntry{
				{Date: now, Completed: true},
				{Date: now.AddDate(0, 0, -1), Completed: true},
				{Date: now.AddDate(0, 0, -2), Completed: false},
			},
		},
		{CurrentStreak: 2, LongestStreak: 4},
	}

	stats := ComputeHabitStats(habits)

	if stats.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2", stats.TotalHabits)
	}
	if stats.TotalCompletions != 2 {
		t.Errorf("TotalCompletions = %d, want 2 (uncompleted entries excluded)", stats.TotalCompletions)
	}
	if stats.AverageStreak != 3 { // round(5/2) = 3
		t.Errorf("AverageStreak = %d, want 3", stats.AverageStreak)
	}
	if stats.LongestStreak != 9 {
		t.Errorf("LongestStreak = %d, want 9", stats.LongestStreak)
	}
}

func TestComputeTaskStats(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusCompleted, Priority: models.PriorityHigh, Category: "Work"},
		{Status: models.StatusPending, Priority: models.PriorityHigh, Category: "Work"},
		{Status: models.StatusPending, Priority: models.PriorityLow, Category: ""},
	}

	stats := ComputeTaskStats(tasks)

	if stats.TotalTasks != 3 || stats.CompletedTasks != 1 || stats.PendingTasks != 2 {
		t.Errorf("Status counts wrong: %+v", stats)
	}
	if stats.HighPriorityTasks != 1 {
		t.Errorf("HighPriorityTasks = %d, want 1 (pending only)", stats.HighPriorityTasks)
	}
	if stats.TasksByPriority[models.PriorityHigh] != 2 {
		t.Errorf("High priority histogram = %d, want 2", stats.TasksByPriority[models.PriorityHigh])
	}
	if stats.CategoryCounts["Work"] != 2 || stats.CategoryCounts["General"] != 1 {
		t.Errorf("Category histogram wrong: %v", stats.CategoryCounts)
	}
}

func TestCountCompletedOnDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{Completions: []models.CompletionEntry{{Date: day.Add(9 * time.Hour), Completed: true}}},
		{Completions: []models.CompletionEntry{{Date: day, Completed: false}}},
		{Completions: []models.CompletionEntry{{Date: day.AddDate(0, 0, -1), Completed: true}}},
	}
	if n := CountHabitsCompletedOn(habits, day); n != 1 {
		t.Errorf("CountHabitsCompletedOn = %d, want 1", n)
	}

	completedAt := day.Add(15 * time.Hour)
	tasks := []models.Task{
		{Status: models.StatusCompleted, CompletedAt: &completedAt},
		{Status: models.StatusCompleted}, // no timestamp
		{Status: models.StatusPending},
	}
	if n := CountTasksCompletedOn(tasks, day); n != 1 {
		t.Errorf("CountTasksCompletedOn = %d, want 1", n)
	}
}
