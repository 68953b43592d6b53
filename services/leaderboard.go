package services

import (
	"go.mongodb.org/mongo-driver/bson"

	"momentum/models"
)

// Leaderboard sort keys
const (
	SortByXP     = "totalXP"
	SortByStreak = "longestStreak"
	SortByLevel  = "level"
)

// LeaderboardSort maps a sort key to its Mongo sort document. Unknown keys
// fall back to total XP.
func LeaderboardSort(sortBy string) bson.D {
	switch sortBy {
	case SortByStreak:
		return bson.D{{Key: "longestStreak", Value: -1}}
	case SortByLevel:
		return bson.D{{Key: "currentLevel", Value: -1}, {Key: "totalXP", Value: -1}}
	default:
		return bson.D{{Key: "totalXP", Value: -1}}
	}
}

// RankFilter builds the filter counting peers strictly greater than the
// given score on the sort key. Rank is that count plus one, so ties share
// a rank.
func RankFilter(sortBy string, score *models.UserScore) bson.M {
	switch sortBy {
	case SortByStreak:
		return bson.M{"longestStreak": bson.M{"$gt": score.LongestStreak}}
	case SortByLevel:
		return bson.M{"currentLevel": bson.M{"$gt": score.CurrentLevel}}
	default:
		return bson.M{"totalXP": bson.M{"$gt": score.TotalXP}}
	}
}

// ScoreGreater reports whether a outranks b under the sort key. Used for
// in-memory ranking and mirrors RankFilter's strictly-greater semantics.
func ScoreGreater(a, b *models.UserScore, sortBy string) bool {
	switch sortBy {
	case SortByStreak:
		return a.LongestStreak > b.LongestStreak
	case SortByLevel:
		return a.CurrentLevel > b.CurrentLevel
	default:
		return a.TotalXP > b.TotalXP
	}
}

// RankAmong computes 1 + the number of peers strictly greater than the
// target on the sort key.
func RankAmong(scores []models.UserScore, target *models.UserScore, sortBy string) int {
	rank := 1
	for i := range scores {
		if scores[i].UserID == target.UserID {
			continue
		}
		if ScoreGreater(&scores[i], target, sortBy) {
			rank++
		}
	}
	return rank
}
