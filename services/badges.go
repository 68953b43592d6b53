package services

import "momentum/models"

// BadgeSummary is the aggregate state badge rules are evaluated against
type BadgeSummary struct {
	HabitCount           int
	LongestStreak        int
	Level                int
	TotalTasksCompleted  int
	TotalHabitsCompleted int
}

type badgeRule struct {
	info      models.BadgeInfo
	satisfied func(BadgeSummary) bool
}

// badgeRules is the fixed, ordered award table. Rules only ever award;
// badges are never revoked when a metric later drops below its threshold.
var badgeRules = []badgeRule{
	{
		info:      models.BadgeInfo{ID: "first_habit", Name: "First Habit", Description: "Created your first habit", Icon: "🎯"},
		satisfied: func(s BadgeSummary) bool { return s.HabitCount > 0 },
	},
	{
		info:      models.BadgeInfo{ID: "streak_7", Name: "Week Warrior", Description: "7-day streak", Icon: "🔥"},
		satisfied: func(s BadgeSummary) bool { return s.LongestStreak >= 7 },
	},
	{
		info:      models.BadgeInfo{ID: "streak_30", Name: "Month Master", Description: "30-day streak", Icon: "🌟"},
		satisfied: func(s BadgeSummary) bool { return s.LongestStreak >= 30 },
	},
	{
		info:      models.BadgeInfo{ID: "level_5", Name: "Level 5", Description: "Reached level 5", Icon: "⭐"},
		satisfied: func(s BadgeSummary) bool { return s.Level >= 5 },
	},
	{
		info:      models.BadgeInfo{ID: "level_10", Name: "Level 10", Description: "Reached level 10", Icon: "💎"},
		satisfied: func(s BadgeSummary) bool { return s.Level >= 10 },
	},
	{
		info:      models.BadgeInfo{ID: "task_master", Name: "Task Master", Description: "Completed 100 tasks", Icon: "✅"},
		satisfied: func(s BadgeSummary) bool { return s.TotalTasksCompleted >= 100 },
	},
	{
		info:      models.BadgeInfo{ID: "habit_hero", Name: "Habit Hero", Description: "Completed 1000 habits", Icon: "🏆"},
		satisfied: func(s BadgeSummary) bool { return s.TotalHabitsCompleted >= 1000 },
	},
}

// AvailableBadges returns the badge catalog in rule order
func AvailableBadges() []models.BadgeInfo {
	infos := make([]models.BadgeInfo, len(badgeRules))
	for i, r := range badgeRules {
		infos[i] = r.info
	}
	return infos
}

// BadgeInfoByID looks up a catalog entry
func BadgeInfoByID(id string) (models.BadgeInfo, bool) {
	for _, r := range badgeRules {
		if r.info.ID == id {
			return r.info, true
		}
	}
	return models.BadgeInfo{}, false
}

// EvaluateBadges returns the ids of rules satisfied by the summary that are
// not already held, in table order.
func EvaluateBadges(summary BadgeSummary, held []string) []string {
	has := make(map[string]bool, len(held))
	for _, id := range held {
		has[id] = true
	}

	var awarded []string
	for _, r := range badgeRules {
		if !has[r.info.ID] && r.satisfied(summary) {
			awarded = append(awarded, r.info.ID)
		}
	}
	return awarded
}
