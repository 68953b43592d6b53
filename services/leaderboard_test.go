package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"momentum/models"
)

func score(xp, streak, level int) models.UserScore {
	return models.UserScore{
		UserID:        primitive.NewObjectID(),
		TotalXP:       xp,
		LongestStreak: streak,
		CurrentLevel:  level,
	}
}

func TestRankAmongStrictlyGreater(t *testing.T) {
	scores := []models.UserScore{
		score(300, 5, 4),
		score(200, 10, 3),
		score(100, 2, 2),
	}
	target := scores[2]

	if rank := RankAmong(scores, &target, SortByXP); rank != 3 {
		t.Errorf("XP rank = %d, want 3", rank)
	}
	if rank := RankAmong(scores, &scores[0], SortByXP); rank != 1 {
		t.Errorf("Top XP rank = %d, want 1", rank)
	}
}

func TestRankAmongTiesShareRank(t *testing.T) {
	scores := []models.UserScore{
		score(500, 0, 0),
		score(200, 0, 0),
		score(200, 0, 0),
		score(100, 0, 0),
	}

	// Both 200-XP users count one strictly-greater peer, so both rank 2.
	if rank := RankAmong(scores, &scores[1], SortByXP); rank != 2 {
		t.Errorf("First tied rank = %d, want 2", rank)
	}
	if rank := RankAmong(scores, &scores[2], SortByXP); rank != 2 {
		t.Errorf("Second tied rank = %d, want 2", rank)
	}
	if rank := RankAmong(scores, &scores[3], SortByXP); rank != 4 {
		t.Errorf("Rank below tie = %d, want 4 (three strictly greater)", rank)
	}
}

func TestRankAmongOtherKeys(t *testing.T) {
	scores := []models.UserScore{
		score(100, 30, 2),
		score(900, 5, 10),
	}
	if rank := RankAmong(scores, &scores[0], SortByStreak); rank != 1 {
		t.Errorf("Streak rank = %d, want 1", rank)
	}
	if rank := RankAmong(scores, &scores[0], SortByLevel); rank != 2 {
		t.Errorf("Level rank = %d, want 2", rank)
	}
}

func TestLeaderboardSortSpecs(t *testing.T) {
	tests := []struct {
		sortBy   string
		firstKey string
	}{
		{SortByXP, "totalXP"},
		{SortByStreak, "longestStreak"},
		{SortByLevel, "currentLevel"},
		{"garbage", "totalXP"}, // unknown keys fall back to XP
	}
	for _, tt := range tests {
		spec := LeaderboardSort(tt.sortBy)
		if len(spec) == 0 || spec[0].Key != tt.firstKey {
			t.Errorf("LeaderboardSort(%q) first key = %v, want %s", tt.sortBy, spec, tt.firstKey)
		}
	}

	// Level sort tiebreaks on XP.
	if spec := LeaderboardSort(SortByLevel); len(spec) != 2 || spec[1].Key != "totalXP" {
		t.Errorf("Level sort should tiebreak on totalXP, got %v", spec)
	}
}

func TestRankFilterMatchesScoreGreater(t *testing.T) {
	target := score(200, 7, 3)
	for _, sortBy := range []string{SortByXP, SortByStreak, SortByLevel} {
		filter := RankFilter(sortBy, &target)
		if len(filter) != 1 {
			t.Errorf("RankFilter(%q) = %v, want a single-key filter", sortBy, filter)
		}
	}
}
