package services

import (
	"time"

	"momentum/models"
)

// NormalizeDay truncates a timestamp to midnight UTC so same-day
// comparisons are exact equality.
func NormalizeDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isoWeekKey folds a date into a comparable (ISO year, ISO week) key
func isoWeekKey(t time.Time) int {
	year, week := t.UTC().ISOWeek()
	return year*100 + week
}

// CalculateStreak recomputes CurrentStreak from the completion ledger and
// ratchets LongestStreak upward. Longest is never recomputed from a full
// history scan, so a retroactively edited run cannot lower it.
func CalculateStreak(habit *models.Habit, now time.Time) {
	if habit.Frequency == models.FrequencyWeekly {
		habit.CurrentStreak = weeklyStreak(habit.Completions, now)
	} else {
		habit.CurrentStreak = dailyStreak(habit.Completions, now)
	}
	if habit.CurrentStreak > habit.LongestStreak {
		habit.LongestStreak = habit.CurrentStreak
	}
}

// dailyStreak walks backward day by day from today. A missing entry for
// today is forgiven (the day is still young); any earlier gap or an
// uncompleted entry ends the streak.
func dailyStreak(completions []models.CompletionEntry, now time.Time) int {
	done := make(map[time.Time]bool, len(completions))
	for _, c := range completions {
		if c.Completed {
			done[NormalizeDay(c.Date)] = true
		}
	}

	day := NormalizeDay(now)
	if !done[day] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for done[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// weeklyStreak is the week-granularity equivalent: one completed entry per
// ISO week counts as one streak unit, and the current week is forgiven
// while it has no completion yet.
func weeklyStreak(completions []models.CompletionEntry, now time.Time) int {
	weeks := make(map[int]bool, len(completions))
	for _, c := range completions {
		if c.Completed {
			weeks[isoWeekKey(c.Date)] = true
		}
	}

	cursor := NormalizeDay(now)
	if !weeks[isoWeekKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -7)
	}

	streak := 0
	for weeks[isoWeekKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -7)
	}
	return streak
}

// MarkCompleted upserts the completion entry for the given day and
// recomputes streaks. At most one entry exists per calendar day.
func MarkCompleted(habit *models.Habit, date, now time.Time) {
	day := NormalizeDay(date)
	updated := false
	for i := range habit.Completions {
		if NormalizeDay(habit.Completions[i].Date).Equal(day) {
			habit.Completions[i].Completed = true
			updated = true
			break
		}
	}
	if !updated {
		habit.Completions = append(habit.Completions, models.CompletionEntry{Date: day, Completed: true})
	}
	CalculateStreak(habit, now)
}

// RemoveCompletion drops any entry for the given day, whatever its
// completed flag, and recomputes streaks. Removing an absent day is a
// no-op.
func RemoveCompletion(habit *models.Habit, date, now time.Time) bool {
	day := NormalizeDay(date)
	kept := habit.Completions[:0]
	removed := false
	for _, c := range habit.Completions {
		if NormalizeDay(c.Date).Equal(day) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	habit.Completions = kept
	CalculateStreak(habit, now)
	return removed
}
