package services

import (
	"math"
	"time"

	"momentum/models"
)

// round1 rounds to one decimal place, matching the report JSON contract
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DailyCompletion is one day's habit completion bucket in the weekly report
type DailyCompletion struct {
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

type WeeklyHabitSummary struct {
	Total            int               `json:"total"`
	AverageStreak    float64           `json:"averageStreak"`
	CompletionRate   float64           `json:"completionRate"`
	DailyCompletions []DailyCompletion `json:"dailyCompletions"`
}

type TaskPeriodSummary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type WeeklyReport struct {
	Period           string             `json:"period"`
	StartDate        time.Time          `json:"startDate"`
	EndDate          time.Time          `json:"endDate"`
	Habits           WeeklyHabitSummary `json:"habits"`
	Tasks            TaskPeriodSummary  `json:"tasks"`
	ConsistencyScore float64            `json:"consistencyScore"`
}

// BuildWeeklyReport folds the last seven days into daily habit buckets,
// task completion rates, and a consistency score (percentage of days with
// at least one habit completion).
func BuildWeeklyReport(habits []models.Habit, tasks []models.Task, now time.Time) WeeklyReport {
	endDate := now
	startDate := now.AddDate(0, 0, -7)

	daily := make([]DailyCompletion, 0, 7)
	daysWithCompletion := 0
	rateSum := 0.0
	for i := 0; i < 7; i++ {
		day := NormalizeDay(startDate.AddDate(0, 0, i))
		completed := CountHabitsCompletedOn(habits, day)
		if completed > 0 {
			daysWithCompletion++
		}
		if len(habits) > 0 {
			rateSum += float64(completed) / float64(len(habits)) * 100
		}
		daily = append(daily, DailyCompletion{Date: day, Completed: completed, Total: len(habits)})
	}

	totalStreak := 0
	for _, h := range habits {
		totalStreak += h.CurrentStreak
	}
	avgStreak := 0.0
	if len(habits) > 0 {
		avgStreak = float64(totalStreak) / float64(len(habits))
	}

	taskSummary := summarizeTasksCreatedSince(tasks, startDate)

	return WeeklyReport{
		Period:    "weekly",
		StartDate: startDate,
		EndDate:   endDate,
		Habits: WeeklyHabitSummary{
			Total:            len(habits),
			AverageStreak:    round1(avgStreak),
			CompletionRate:   rateSum / 7,
			DailyCompletions: daily,
		},
		Tasks:            taskSummary,
		ConsistencyScore: round1(float64(daysWithCompletion) / 7 * 100),
	}
}

// WeekBucket is one synthetic week in the monthly breakdown. Weeks are
// fixed 7-day offsets from the report start date, not calendar weeks.
type WeekBucket struct {
	Week           int       `json:"week"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TasksCompleted int       `json:"tasksCompleted"`
	TasksTotal     int       `json:"tasksTotal"`
}

type MonthlyHabitSummary struct {
	Total            int     `json:"total"`
	TotalCompletions int     `json:"totalCompletions"`
	AverageStreak    float64 `json:"averageStreak"`
	LongestStreak    int     `json:"longestStreak"`
	CompletionRate   float64 `json:"completionRate"`
}

type MonthlyTaskSummary struct {
	Total           int          `json:"total"`
	Completed       int          `json:"completed"`
	CompletionRate  float64      `json:"completionRate"`
	WeeklyBreakdown []WeekBucket `json:"weeklyBreakdown"`
}

type MonthlyReport struct {
	Period           string              `json:"period"`
	StartDate        time.Time           `json:"startDate"`
	EndDate          time.Time           `json:"endDate"`
	Habits           MonthlyHabitSummary `json:"habits"`
	Tasks            MonthlyTaskSummary  `json:"tasks"`
	ConsistencyScore float64             `json:"consistencyScore"`
}

// BuildMonthlyReport covers the trailing month with four synthetic 7-day
// weeks offset from the window start.
func BuildMonthlyReport(habits []models.Habit, tasks []models.Task, now time.Time) MonthlyReport {
	endDate := now
	startDate := now.AddDate(0, -1, 0)

	weeks := make([]WeekBucket, 0, 4)
	for week := 0; week < 4; week++ {
		weekStart := startDate.AddDate(0, 0, week*7)
		weekEnd := weekStart.AddDate(0, 0, 6)

		total := 0
		completed := 0
		for _, t := range tasks {
			if t.CreatedAt.Before(weekStart) || t.CreatedAt.After(weekEnd) {
				continue
			}
			total++
			if t.Status == models.StatusCompleted {
				completed++
			}
		}
		weeks = append(weeks, WeekBucket{
			Week:           week + 1,
			StartDate:      weekStart,
			EndDate:        weekEnd,
			TasksCompleted: completed,
			TasksTotal:     total,
		})
	}

	totalCompletions := 0
	totalStreak := 0
	longestStreak := 0
	daysWithCompletion := 0
	for _, h := range habits {
		for _, c := range h.Completions {
			if c.Completed && !c.Date.Before(startDate) && !c.Date.After(endDate) {
				totalCompletions++
			}
		}
		totalStreak += h.CurrentStreak
		if h.LongestStreak > longestStreak {
			longestStreak = h.LongestStreak
		}
	}

	windowDays := 0
	for day := NormalizeDay(startDate); !day.After(NormalizeDay(endDate)); day = day.AddDate(0, 0, 1) {
		windowDays++
		if CountHabitsCompletedOn(habits, day) > 0 {
			daysWithCompletion++
		}
	}

	avgStreak := 0.0
	completionRate := 0.0
	if len(habits) > 0 {
		avgStreak = float64(totalStreak) / float64(len(habits))
		completionRate = float64(totalCompletions) / float64(len(habits)*30) * 100
	}
	consistency := 0.0
	if windowDays > 0 {
		consistency = float64(daysWithCompletion) / float64(windowDays) * 100
	}

	taskSummary := summarizeTasksCreatedSince(tasks, startDate)

	return MonthlyReport{
		Period:    "monthly",
		StartDate: startDate,
		EndDate:   endDate,
		Habits: MonthlyHabitSummary{
			Total:            len(habits),
			TotalCompletions: totalCompletions,
			AverageStreak:    round1(avgStreak),
			LongestStreak:    longestStreak,
			CompletionRate:   completionRate,
		},
		Tasks: MonthlyTaskSummary{
			Total:           taskSummary.Total,
			Completed:       taskSummary.Completed,
			CompletionRate:  taskSummary.CompletionRate,
			WeeklyBreakdown: weeks,
		},
		ConsistencyScore: round1(consistency),
	}
}

func summarizeTasksCreatedSince(tasks []models.Task, start time.Time) TaskPeriodSummary {
	summary := TaskPeriodSummary{}
	for _, t := range tasks {
		if t.CreatedAt.Before(start) {
			continue
		}
		summary.Total++
		if t.Status == models.StatusCompleted {
			summary.Completed++
		}
	}
	if summary.Total > 0 {
		summary.CompletionRate = float64(summary.Completed) / float64(summary.Total) * 100
	}
	return summary
}
