package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/models"
	"momentum/services"
	"momentum/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func userSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	cursor, err := db.MongoDatabase.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func scoreSummary(score *models.UserScore) gin.H {
	return gin.H{
		"totalXP":        score.TotalXP,
		"currentLevel":   score.CurrentLevel,
		"longestStreak":  score.LongestStreak,
		"badges":         score.Badges,
		"xpForNextLevel": score.XPForNextLevel(),
	}
}

// GetLeaderboard returns the top scores on the requested key plus the
// caller's own rank
func GetLeaderboard(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sortBy := c.DefaultQuery("sortBy", services.SortByXP)
	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scoresColl := db.MongoDatabase.Collection("user_scores")

	opts := options.Find().SetSort(services.LeaderboardSort(sortBy)).SetLimit(limit)
	cursor, err := scoresColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	var scores []models.UserScore
	if err := cursor.All(ctx, &scores); err != nil {
		log.Printf("Error decoding leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(scores))
	for _, s := range scores {
		ids = append(ids, s.UserID)
	}
	users, err := userSummaries(ctx, ids)
	if err != nil {
		log.Printf("Error fetching leaderboard users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	entries := make([]gin.H, 0, len(scores))
	for i, s := range scores {
		userSummary := gin.H{"id": s.UserID.Hex()}
		if u, found := users[s.UserID]; found {
			userSummary["name"] = u.Name
			userSummary["profilePicture"] = u.ProfilePicture
		}
		entries = append(entries, gin.H{
			"rank":          i + 1,
			"user":          userSummary,
			"totalXP":       s.TotalXP,
			"currentLevel":  s.CurrentLevel,
			"longestStreak": s.LongestStreak,
			"badges":        s.Badges,
		})
	}

	response := gin.H{"leaderboard": entries, "sortBy": sortBy}

	var own models.UserScore
	err = scoresColl.FindOne(ctx, bson.M{"user": userID}).Decode(&own)
	switch {
	case err == mongo.ErrNoDocuments:
		response["userRank"] = nil
		response["userScore"] = nil
	case err != nil:
		log.Printf("Error fetching own score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	default:
		greater, err := scoresColl.CountDocuments(ctx, services.RankFilter(sortBy, &own))
		if err != nil {
			log.Printf("Error ranking user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		response["userRank"] = greater + 1
		response["userScore"] = scoreSummary(&own)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateLeaderboardScore applies xp/badge/streak deltas to the caller's score
func UpdateLeaderboardScore(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	score, err := loadOrCreateScore(ctx, userID)
	if err != nil {
		log.Printf("Error loading score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update score"})
		return
	}

	if req.XP > 0 {
		score.AddXP(req.XP)
	}
	if req.Badge != "" {
		score.AddBadge(req.Badge)
	}
	if req.Streak > score.LongestStreak {
		score.LongestStreak = req.Streak
	}

	if err := saveScore(ctx, score); err != nil {
		log.Printf("Error saving score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update score"})
		return
	}

	c.JSON(http.StatusOK, score)
}
