package services

import (
	"testing"
	"time"

	"momentum/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func completedOn(dates ...time.Time) []models.CompletionEntry {
	entries := make([]models.CompletionEntry, len(dates))
	for i, d := range dates {
		entries[i] = models.CompletionEntry{Date: d, Completed: true}
	}
	return entries
}

func TestDailyStreakCountsConsecutiveDays(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency:   models.FrequencyDaily,
		Completions: completedOn(today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2)),
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 3 {
		t.Errorf("Expected current streak 3, got %d", habit.CurrentStreak)
	}
	if habit.LongestStreak != 3 {
		t.Errorf("Expected longest streak 3, got %d", habit.LongestStreak)
	}
}

func TestDailyStreakForgivesMissingToday(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency:   models.FrequencyDaily,
		Completions: completedOn(today.AddDate(0, 0, -1), today.AddDate(0, 0, -2)),
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 when today has no entry yet, got %d", habit.CurrentStreak)
	}
}

func TestDailyStreakBreaksOnGap(t *testing.T) {
	today := day(t, "2024-03-10")
	// Completed three days ago, nothing since.
	habit := &models.Habit{
		Frequency:   models.FrequencyDaily,
		Completions: completedOn(today.AddDate(0, 0, -3)),
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 0 {
		t.Errorf("Expected current streak 0 after gap, got %d", habit.CurrentStreak)
	}
}

func TestDailyStreakIgnoresUncompletedEntries(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency: models.FrequencyDaily,
		Completions: []models.CompletionEntry{
			{Date: today, Completed: true},
			{Date: today.AddDate(0, 0, -1), Completed: false},
			{Date: today.AddDate(0, 0, -2), Completed: true},
		},
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 1 {
		t.Errorf("Expected streak 1 (uncompleted entry breaks it), got %d", habit.CurrentStreak)
	}
}

func TestLongestStreakRatchets(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency:     models.FrequencyDaily,
		LongestStreak: 5,
		Completions:   completedOn(today),
	}

	CalculateStreak(habit, today)

	if habit.LongestStreak != 5 {
		t.Errorf("Longest streak should not drop below its previous value, got %d", habit.LongestStreak)
	}
	if habit.LongestStreak < habit.CurrentStreak {
		t.Errorf("Invariant violated: longest %d < current %d", habit.LongestStreak, habit.CurrentStreak)
	}
}

func TestWeeklyStreakCountsISOWeeks(t *testing.T) {
	// 2024-03-10 is a Sunday (ISO week 10); the three prior completions sit
	// in weeks 10, 9 and 8.
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency: models.FrequencyWeekly,
		Completions: completedOn(
			day(t, "2024-03-05"), // week 10
			day(t, "2024-02-27"), // week 9
			day(t, "2024-02-19"), // week 8
		),
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 3 {
		t.Errorf("Expected weekly streak 3, got %d", habit.CurrentStreak)
	}
}

func TestWeeklyStreakForgivesCurrentWeek(t *testing.T) {
	// No completion yet in the current ISO week; the streak should start
	// counting from last week.
	today := day(t, "2024-03-12") // Tuesday, week 11
	habit := &models.Habit{
		Frequency: models.FrequencyWeekly,
		Completions: completedOn(
			day(t, "2024-03-06"), // week 10
			day(t, "2024-02-28"), // week 9
		),
	}

	CalculateStreak(habit, today)

	if habit.CurrentStreak != 2 {
		t.Errorf("Expected weekly streak 2, got %d", habit.CurrentStreak)
	}
}

func TestMarkCompletedUpsertsPerDay(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{Frequency: models.FrequencyDaily}

	// Completing the same day repeatedly, at different times of day, must
	// leave a single entry.
	MarkCompleted(habit, today.Add(8*time.Hour), today)
	MarkCompleted(habit, today.Add(20*time.Hour), today)
	MarkCompleted(habit, today, today)

	if len(habit.Completions) != 1 {
		t.Fatalf("Expected 1 completion entry, got %d", len(habit.Completions))
	}
	if !habit.Completions[0].Completed {
		t.Error("Entry should be marked completed")
	}
	if habit.CurrentStreak != 1 {
		t.Errorf("Expected streak 1, got %d", habit.CurrentStreak)
	}
}

func TestMarkCompletedRevivesUncompletedEntry(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency:   models.FrequencyDaily,
		Completions: []models.CompletionEntry{{Date: today, Completed: false}},
	}

	MarkCompleted(habit, today, today)

	if len(habit.Completions) != 1 {
		t.Fatalf("Expected entry to be upserted, got %d entries", len(habit.Completions))
	}
	if !habit.Completions[0].Completed {
		t.Error("Existing entry should flip to completed")
	}
}

func TestRemoveCompletionIsIdempotent(t *testing.T) {
	today := day(t, "2024-03-10")
	habit := &models.Habit{
		Frequency:   models.FrequencyDaily,
		Completions: completedOn(today),
	}

	if removed := RemoveCompletion(habit, today, today); !removed {
		t.Error("Expected removal of existing entry")
	}
	if habit.CurrentStreak != 0 {
		t.Errorf("Expected streak 0 after removal, got %d", habit.CurrentStreak)
	}

	// Second removal of the same day is a no-op.
	if removed := RemoveCompletion(habit, today, today); removed {
		t.Error("Removing an absent day should report false")
	}
	if len(habit.Completions) != 0 {
		t.Errorf("Expected no entries, got %d", len(habit.Completions))
	}
}

func TestNormalizeDayTruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	stamp := time.Date(2024, 3, 10, 2, 30, 0, 0, loc) // 2024-03-09 21:30 UTC

	got := NormalizeDay(stamp)
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDay = %v, want %v", got, want)
	}
}
