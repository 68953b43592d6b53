package services

import (
	"math"
	"time"

	"momentum/models"
)

// HabitStats summarizes a user's habit collection
type HabitStats struct {
	TotalHabits      int `json:"totalHabits"`
	TotalCompletions int `json:"totalCompletions"`
	AverageStreak    int `json:"averageStreak"`
	LongestStreak    int `json:"longestStreak"`
}

// ComputeHabitStats folds over the habit collection. Empty input yields
// zero values, never an error.
func ComputeHabitStats(habits []models.Habit) HabitStats {
	stats := HabitStats{TotalHabits: len(habits)}

	totalStreak := 0
	for _, h := range habits {
		for _, c := range h.Completions {
			if c.Completed {
				stats.TotalCompletions++
			}
		}
		totalStreak += h.CurrentStreak
		if h.LongestStreak > stats.LongestStreak {
			stats.LongestStreak = h.LongestStreak
		}
	}

	if stats.TotalHabits > 0 {
		stats.AverageStreak = int(math.Round(float64(totalStreak) / float64(stats.TotalHabits)))
	}
	return stats
}

// TaskStats summarizes a user's task collection
type TaskStats struct {
	TotalTasks        int            `json:"totalTasks"`
	CompletedTasks    int            `json:"completedTasks"`
	PendingTasks      int            `json:"pendingTasks"`
	HighPriorityTasks int            `json:"highPriorityTasks"`
	TasksByPriority   map[string]int `json:"tasksByPriority"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
}

// ComputeTaskStats counts tasks by status and priority plus a category
// histogram. HighPriorityTasks counts only pending ones.
func ComputeTaskStats(tasks []models.Task) TaskStats {
	stats := TaskStats{
		TotalTasks: len(tasks),
		TasksByPriority: map[string]int{
			models.PriorityHigh:   0,
			models.PriorityMedium: 0,
			models.PriorityLow:    0,
		},
		CategoryCounts: map[string]int{},
	}

	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			stats.CompletedTasks++
		case models.StatusPending:
			stats.PendingTasks++
		}
		if t.Priority == models.PriorityHigh && t.Status == models.StatusPending {
			stats.HighPriorityTasks++
		}
		stats.TasksByPriority[t.Priority]++

		cat := t.Category
		if cat == "" {
			cat = "General"
		}
		stats.CategoryCounts[cat]++
	}
	return stats
}

// StreakTotals returns the best longest streak across the habits alongside
// the sum of their current streaks.
func StreakTotals(habits []models.Habit) (longest, current int) {
	for _, h := range habits {
		if h.LongestStreak > longest {
			longest = h.LongestStreak
		}
		current += h.CurrentStreak
	}
	return longest, current
}

// CountHabitsCompletedOn counts how many habits have a completed entry on
// the given day
func CountHabitsCompletedOn(habits []models.Habit, day time.Time) int {
	day = NormalizeDay(day)
	count := 0
	for _, h := range habits {
		for _, c := range h.Completions {
			if c.Completed && NormalizeDay(c.Date).Equal(day) {
				count++
				break
			}
		}
	}
	return count
}

// CountTasksCompletedOn counts tasks whose completion fell on the given day
func CountTasksCompletedOn(tasks []models.Task, day time.Time) int {
	day = NormalizeDay(day)
	count := 0
	for _, t := range tasks {
		if t.Status != models.StatusCompleted || t.CompletedAt == nil {
			continue
		}
		if NormalizeDay(*t.CompletedAt).Equal(day) {
			count++
		}
	}
	return count
}
