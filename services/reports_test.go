package services

import (
	"testing"
	"time"

	"momentum/models"
)

func TestWeeklyReportDailyBucketsAndConsistency(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{
			CurrentStreak: 2,
			Completions: completedOn(
				now.AddDate(0, 0, -1),
				now.AddDate(0, 0, -2),
			),
		},
	}

	report := BuildWeeklyReport(habits, nil, now)

	if report.Period != "weekly" {
		t.Errorf("Period = %q, want weekly", report.Period)
	}
	if len(report.Habits.DailyCompletions) != 7 {
		t.Fatalf("Expected 7 daily buckets, got %d", len(report.Habits.DailyCompletions))
	}

	// Two of seven days had at least one completion.
	want := round1(2.0 / 7.0 * 100)
	if report.ConsistencyScore != want {
		t.Errorf("ConsistencyScore = %v, want %v", report.ConsistencyScore, want)
	}

	completedDays := 0
	for _, d := range report.Habits.DailyCompletions {
		if d.Total != 1 {
			t.Errorf("Daily total = %d, want 1", d.Total)
		}
		if d.Completed > 0 {
			completedDays++
		}
	}
	if completedDays != 2 {
		t.Errorf("Expected habit completions on 2 days, got %d", completedDays)
	}
}

func TestWeeklyReportEmptyCollections(t *testing.T) {
	report := BuildWeeklyReport(nil, nil, time.Now())
	if report.ConsistencyScore != 0 || report.Habits.Total != 0 || report.Tasks.Total != 0 {
		t.Errorf("Empty input should produce zero-valued report, got %+v", report)
	}
}

func TestWeeklyReportTaskWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{CreatedAt: now.AddDate(0, 0, -2), Status: models.StatusCompleted},
		{CreatedAt: now.AddDate(0, 0, -3), Status: models.StatusPending},
		{CreatedAt: now.AddDate(0, 0, -20), Status: models.StatusCompleted}, // outside window
	}

	report := BuildWeeklyReport(nil, tasks, now)

	if report.Tasks.Total != 2 || report.Tasks.Completed != 1 {
		t.Errorf("Task summary = %+v, want total 2 completed 1", report.Tasks)
	}
	if report.Tasks.CompletionRate != 50 {
		t.Errorf("CompletionRate = %v, want 50", report.Tasks.CompletionRate)
	}
}

func TestMonthlyReportSyntheticWeeks(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	report := BuildMonthlyReport(nil, nil, now)

	if len(report.Tasks.WeeklyBreakdown) != 4 {
		t.Fatalf("Expected 4 synthetic weeks, got %d", len(report.Tasks.WeeklyBreakdown))
	}

	start := now.AddDate(0, -1, 0)
	for i, week := range report.Tasks.WeeklyBreakdown {
		wantStart := start.AddDate(0, 0, i*7)
		wantEnd := wantStart.AddDate(0, 0, 6)
		if !week.StartDate.Equal(wantStart) {
			t.Errorf("Week %d start = %v, want %v (7-day offsets from report start, not calendar weeks)", i+1, week.StartDate, wantStart)
		}
		if !week.EndDate.Equal(wantEnd) {
			t.Errorf("Week %d end = %v, want %v", i+1, week.EndDate, wantEnd)
		}
		if week.Week != i+1 {
			t.Errorf("Week number = %d, want %d", week.Week, i+1)
		}
	}
}

func TestMonthlyReportHabitWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{
			CurrentStreak: 1,
			LongestStreak: 6,
			Completions: []models.CompletionEntry{
				{Date: now.AddDate(0, 0, -5), Completed: true},
				{Date: now.AddDate(0, 0, -10), Completed: true},
				{Date: now.AddDate(0, -2, 0), Completed: true}, // outside window
				{Date: now.AddDate(0, 0, -3), Completed: false},
			},
		},
	}

	report := BuildMonthlyReport(habits, nil, now)

	if report.Habits.TotalCompletions != 2 {
		t.Errorf("TotalCompletions = %d, want 2", report.Habits.TotalCompletions)
	}
	if report.Habits.LongestStreak != 6 {
		t.Errorf("LongestStreak = %d, want 6", report.Habits.LongestStreak)
	}
}
